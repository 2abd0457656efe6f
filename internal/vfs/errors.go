// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"errors"
	"io/fs"
	"strings"
)

var (
	// ErrNotFound is returned if a node that is looked up does not exist.
	ErrNotFound = fs.ErrNotExist

	// ErrNotADirectory is returned if a node exists but is not a directory.
	ErrNotADirectory = errors.New("not a directory")

	// ErrNotAFile is returned if a node exists but is not a regular file.
	ErrNotAFile = errors.New("not a file")

	// ErrInvalidMode is returned if a permission mode can not be parsed or is
	// out of range.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrInvalidEntry is returned if an archive entry has a name that can not
	// be placed into the tree.
	ErrInvalidEntry = errors.New("invalid archive entry")

	// ErrArchiveLoad is matched by any [LoadError].
	ErrArchiveLoad = errors.New("archive load failed")
)

// PathError records an error and the operation and path that caused it.
type PathError = fs.PathError

// LoadError wraps errors that occur while importing an archive.
type LoadError struct {
	// Archive is the name of the archive the import was started for, if known.
	Archive string
	// Entry is the name of the entry that failed, if the error is related to
	// a single entry.
	Entry string
	Err   error
}

func (e *LoadError) Error() string {
	var msg strings.Builder

	msg.WriteString("load archive")

	if e.Archive != "" {
		msg.WriteString(" " + e.Archive)
	}

	if e.Entry != "" {
		msg.WriteString(": entry " + e.Entry)
	}

	if e.Err != nil {
		msg.WriteString(": " + e.Err.Error())
	}

	return msg.String()
}

func (e *LoadError) Is(other error) bool {
	if other == ErrArchiveLoad {
		return true
	}

	_, ok := other.(*LoadError)

	return ok
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
