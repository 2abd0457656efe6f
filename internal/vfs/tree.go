// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"iter"
	"strings"
)

// Tree is a file tree with a [Directory] as root.
type Tree struct {
	// Do not access directly! Always use [Tree.Root] to access the root
	// node to ensure it exists.
	root *Directory
}

// NewTree creates an empty [Tree].
func NewTree() *Tree {
	return &Tree{root: NewDirectory()}
}

// Root returns the root node of the tree.
func (t *Tree) Root() *Directory {
	if t.root == nil {
		t.root = NewDirectory()
	}

	return t.root
}

// Lookup returns the node for the given canonical path. Returns ErrNotFound
// if the node does not exist. Use [Normalize] to get a canonical path.
func (t *Tree) Lookup(path string) (Node, error) {
	var node Node = t.Root()

	for name := range strings.SplitSeq(path, Separator) {
		if name == "" {
			continue
		}

		dir, isDir := node.(*Directory)
		if !isDir {
			return nil, ErrNotFound
		}

		child, exists := dir.Child(name)
		if !exists {
			return nil, ErrNotFound
		}

		node = child
	}

	return node, nil
}

// All returns an iterator that iterates all [Node]s breadth-first with their
// canonical paths, starting with the root. Children are visited in insertion
// order.
func (t *Tree) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		type pending struct {
			path string
			dir  *Directory
		}

		root := t.Root()
		if !yield(Separator, root) {
			return
		}

		queue := []pending{{Separator, root}}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]

			for name, node := range current.dir.Children() {
				path := childPath(current.path, name)
				if !yield(path, node) {
					return
				}

				if dir, isDir := node.(*Directory); isDir {
					queue = append(queue, pending{path, dir})
				}
			}
		}
	}
}

// Stats are counters over all nodes of a [Tree].
type Stats struct {
	Directories int
	Files       int
	Bytes       int
}

// Stats counts the nodes of the tree. The root is counted as directory.
func (t *Tree) Stats() Stats {
	var stats Stats

	for _, node := range t.All() {
		switch n := node.(type) {
		case *Directory:
			stats.Directories++
		case *File:
			stats.Files++
			stats.Bytes += n.Size()
		}
	}

	return stats
}
