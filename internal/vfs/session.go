// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"fmt"
)

const (
	opList  = "ls"
	opCd    = "cd"
	opRead  = "cat"
	opChmod = "chmod"
)

// DirEntry describes a single child of a directory.
type DirEntry struct {
	Name string
	Kind Kind
	Mode Mode
}

// Session is a navigation session on a [Tree]. It tracks the current
// working directory, which always is an existing directory.
//
// All operations resolve their path argument against the current working
// directory with [Normalize]. Errors are returned as [PathError] carrying the
// operation name and the path as given.
type Session struct {
	tree *Tree
	cwd  string
}

// NewSession creates a new [Session] for the given tree with the root as
// working directory. A nil tree is treated as empty tree.
func NewSession(tree *Tree) *Session {
	if tree == nil {
		tree = NewTree()
	}

	return &Session{
		tree: tree,
		cwd:  Separator,
	}
}

// Cwd returns the canonical path of the current working directory.
func (s *Session) Cwd() string {
	return s.cwd
}

// Tree returns the tree the session works on.
func (s *Session) Tree() *Tree {
	return s.tree
}

func (s *Session) lookup(op, path string) (string, Node, error) {
	resolved := Normalize(path, s.cwd)

	node, err := s.tree.Lookup(resolved)
	if err != nil {
		return "", nil, &PathError{Op: op, Path: path, Err: err}
	}

	return resolved, node, nil
}

// List returns the children of the directory at the given path in the order
// they have been imported in.
func (s *Session) List(path string) ([]DirEntry, error) {
	_, node, err := s.lookup(opList, path)
	if err != nil {
		return nil, err
	}

	dir, isDir := node.(*Directory)
	if !isDir {
		return nil, &PathError{Op: opList, Path: path, Err: ErrNotADirectory}
	}

	entries := make([]DirEntry, 0, dir.Len())

	for name, child := range dir.Children() {
		entries = append(entries, DirEntry{
			Name: name,
			Kind: child.Kind(),
			Mode: child.Mode(),
		})
	}

	return entries, nil
}

// ChangeDirectory sets the current working directory to the given path and
// returns its canonical form. On error, the working directory is not changed.
func (s *Session) ChangeDirectory(path string) (string, error) {
	resolved, node, err := s.lookup(opCd, path)
	if err != nil {
		return "", err
	}

	if node.Kind() != KindDirectory {
		return "", &PathError{Op: opCd, Path: path, Err: ErrNotADirectory}
	}

	s.cwd = resolved

	return resolved, nil
}

// ReadFile returns a copy of the content of the file at the given path.
func (s *Session) ReadFile(path string) ([]byte, error) {
	_, node, err := s.lookup(opRead, path)
	if err != nil {
		return nil, err
	}

	file, isFile := node.(*File)
	if !isFile {
		return nil, &PathError{Op: opRead, Path: path, Err: ErrNotAFile}
	}

	return file.Content(), nil
}

// SetPermissions parses the given octal mode string with [ParseMode] and
// applies it to the node at the given path. It returns the stored mode.
func (s *Session) SetPermissions(mode, path string) (Mode, error) {
	parsed, err := ParseMode(mode)
	if err != nil {
		return 0, &PathError{Op: opChmod, Path: path, Err: err}
	}

	return s.Chmod(parsed, path)
}

// Chmod applies the given mode to the node at the given path, no matter if it
// is a directory or a file. It returns the stored mode.
func (s *Session) Chmod(mode Mode, path string) (Mode, error) {
	if !mode.Valid() {
		return 0, &PathError{
			Op:   opChmod,
			Path: path,
			Err:  fmt.Errorf("%w: %o exceeds %s", ErrInvalidMode, uint32(mode), ModePerm),
		}
	}

	_, node, err := s.lookup(opChmod, path)
	if err != nil {
		return 0, err
	}

	node.setMode(mode)

	return node.Mode(), nil
}
