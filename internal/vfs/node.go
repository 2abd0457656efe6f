// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"bytes"
	"fmt"
	"iter"
)

// Kind is the type of a [Node].
type Kind int

const (
	// KindDirectory is the [Kind] of a [Directory].
	KindDirectory Kind = iota
	// KindFile is the [Kind] of a [File].
	KindFile
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single node of a [Tree]. It is either a [*Directory] or a
// [*File].
type Node interface {
	// Kind returns the type of the node.
	Kind() Kind
	// Mode returns the permission bits of the node.
	Mode() Mode

	setMode(mode Mode)
}

var (
	_ Node = (*Directory)(nil)
	_ Node = (*File)(nil)
)

// Directory is a [Node] that has named children. Children keep the order
// they have been added in.
type Directory struct {
	mode     Mode
	names    []string
	children map[string]Node
}

// NewDirectory creates an empty [Directory] with [DefaultDirectoryMode].
func NewDirectory() *Directory {
	return &Directory{mode: DefaultDirectoryMode}
}

// Kind implements [Node].
func (*Directory) Kind() Kind { return KindDirectory }

// Mode implements [Node].
func (d *Directory) Mode() Mode { return d.mode }

func (d *Directory) setMode(mode Mode) { d.mode = mode }

// String returns a string representation of the Directory.
func (d *Directory) String() string {
	return fmt.Sprintf("directory %s %v", d.mode, d.names)
}

// Len returns the number of children.
func (d *Directory) Len() int {
	return len(d.names)
}

// Child returns the child with the given name.
func (d *Directory) Child(name string) (Node, bool) {
	node, exists := d.children[name]
	return node, exists
}

// Children returns an iterator over all children in insertion order.
func (d *Directory) Children() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		for _, name := range d.names {
			if !yield(name, d.children[name]) {
				return
			}
		}
	}
}

func (d *Directory) add(name string, node Node) {
	if d.children == nil {
		d.children = make(map[string]Node)
	}

	if _, exists := d.children[name]; !exists {
		d.names = append(d.names, name)
	}

	d.children[name] = node
}

// mkdir returns the child directory with the given name. It is created if it
// does not exist yet. Returns ErrNotADirectory if a file with that name
// exists.
func (d *Directory) mkdir(name string) (*Directory, error) {
	node, exists := d.children[name]
	if !exists {
		dir := NewDirectory()
		d.add(name, dir)

		return dir, nil
	}

	dir, isDir := node.(*Directory)
	if !isDir {
		return nil, fmt.Errorf("%s: %w", name, ErrNotADirectory)
	}

	return dir, nil
}

// putFile adds the file with the given name. An existing file with the same
// name is replaced in place. Returns ErrNotAFile if a directory with that name
// exists.
func (d *Directory) putFile(name string, file *File) error {
	if node, exists := d.children[name]; exists && node.Kind() != KindFile {
		return fmt.Errorf("%s: %w", name, ErrNotAFile)
	}

	d.add(name, file)

	return nil
}

// File is a [Node] that holds content.
type File struct {
	mode    Mode
	content []byte
}

// NewFile creates a [File] with [DefaultFileMode]. The content is copied.
func NewFile(content []byte) *File {
	return &File{
		mode:    DefaultFileMode,
		content: bytes.Clone(content),
	}
}

// Kind implements [Node].
func (*File) Kind() Kind { return KindFile }

// Mode implements [Node].
func (f *File) Mode() Mode { return f.mode }

func (f *File) setMode(mode Mode) { f.mode = mode }

// String returns a string representation of the File.
func (f *File) String() string {
	return fmt.Sprintf("file %s (%d bytes)", f.mode, len(f.content))
}

// Size returns the length of the content in bytes.
func (f *File) Size() int {
	return len(f.content)
}

// Content returns a copy of the file's content.
func (f *File) Content() []byte {
	return bytes.Clone(f.content)
}
