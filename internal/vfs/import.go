// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"iter"
	"strings"
)

// Entry is a single archive record to import into a [Tree].
type Entry struct {
	// Name is the "/" separated path of the entry in the archive.
	Name string
	// IsDir is true for directory entries. Data is ignored for them.
	IsDir bool
	// Data is the raw content of a file entry.
	Data []byte
}

// Entries returns an iterator over the given entries.
func Entries(entries ...Entry) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for _, entry := range entries {
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Import builds a new [Tree] from the given entries.
//
// Parent directories that have no entry of their own are created with
// [DefaultDirectoryMode]. Files are created with [DefaultFileMode] and their
// data is stored unmodified. If a file entry with the same name occurs more
// than once, the last one wins.
//
// The tree is only returned if all entries have been imported successfully.
// Any error, be it yielded by the iterator or caused by an entry, is returned
// as [LoadError].
func Import(entries iter.Seq2[Entry, error]) (*Tree, error) {
	tree := NewTree()

	for entry, err := range entries {
		if err != nil {
			return nil, &LoadError{Err: err}
		}

		if insertErr := tree.insert(entry); insertErr != nil {
			return nil, &LoadError{Entry: entry.Name, Err: insertErr}
		}
	}

	return tree, nil
}

func (t *Tree) insert(entry Entry) error {
	segments, err := entrySegments(entry.Name)
	if err != nil {
		return err
	}

	// Entries like "./" describe the root itself.
	if len(segments) == 0 {
		if entry.IsDir {
			return nil
		}

		return ErrInvalidEntry
	}

	parent := t.Root()
	last := len(segments) - 1

	for _, name := range segments[:last] {
		parent, err = parent.mkdir(name)
		if err != nil {
			return err
		}
	}

	if entry.IsDir {
		_, err := parent.mkdir(segments[last])
		return err
	}

	return parent.putFile(segments[last], NewFile(entry.Data))
}

func entrySegments(name string) ([]string, error) {
	segments := []string{}

	for segment := range strings.SplitSeq(name, Separator) {
		switch segment {
		case "", ".":
		case "..":
			return nil, ErrInvalidEntry
		default:
			segments = append(segments, segment)
		}
	}

	return segments, nil
}
