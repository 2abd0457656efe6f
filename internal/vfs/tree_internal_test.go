// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeRoot(t *testing.T) {
	tree := Tree{}
	r := tree.Root()
	assert.NotNil(t, tree.root)
	assert.Equal(t, KindDirectory, r.Kind())
	assert.Equal(t, DefaultDirectoryMode, r.Mode())
	assert.Same(t, tree.root, r)
}

func TestTreeLookup(t *testing.T) {
	leaf := NewFile([]byte("yo"))
	dir := NewDirectory()
	dir.add("leaf", leaf)

	tree := NewTree()
	tree.root.add("dir", dir)

	tests := []struct {
		name        string
		path        string
		expected    Node
		expectedErr error
	}{
		{
			name:     "root",
			path:     "/",
			expected: tree.root,
		},
		{
			name:     "directory",
			path:     "/dir",
			expected: dir,
		},
		{
			name:     "file",
			path:     "/dir/leaf",
			expected: leaf,
		},
		{
			name:        "missing",
			path:        "/nope",
			expectedErr: ErrNotFound,
		},
		{
			name:        "missing in directory",
			path:        "/dir/nope",
			expectedErr: ErrNotFound,
		},
		{
			name:        "file as parent",
			path:        "/dir/leaf/more",
			expectedErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := tree.Lookup(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, node)
		})
	}
}

func childNames(dir *Directory) []string {
	names := []string{}
	for name := range dir.Children() {
		names = append(names, name)
	}

	return names
}

func TestDirectoryAdd(t *testing.T) {
	dir := NewDirectory()
	second := NewFile([]byte("2"))

	dir.add("b", NewFile([]byte("1")))
	dir.add("a", NewDirectory())
	dir.add("b", second)

	assert.Equal(t, 2, dir.Len())
	assert.Equal(t, []string{"b", "a"}, childNames(dir),
		"replacing should keep the position")

	node, exists := dir.Child("b")
	require.True(t, exists)
	assert.Same(t, second, node)
}

func TestDirectoryMkdir(t *testing.T) {
	t.Run("new", func(t *testing.T) {
		dir := NewDirectory()
		sub, err := dir.mkdir("sub")
		require.NoError(t, err)
		assert.Equal(t, DefaultDirectoryMode, sub.Mode())
		assert.Equal(t, []string{"sub"}, childNames(dir))
	})

	t.Run("exists", func(t *testing.T) {
		dir := NewDirectory()
		sub, err := dir.mkdir("sub")
		require.NoError(t, err)
		sub.setMode(0o700)

		again, err := dir.mkdir("sub")
		require.NoError(t, err)
		assert.Same(t, sub, again)
		assert.Equal(t, Mode(0o700), again.Mode(), "mode should be unchanged")
	})

	t.Run("fails if file exists", func(t *testing.T) {
		dir := NewDirectory()
		dir.add("sub", NewFile(nil))
		_, err := dir.mkdir("sub")
		assert.ErrorIs(t, err, ErrNotADirectory)
	})
}

func TestDirectoryPutFile(t *testing.T) {
	dir := NewDirectory()
	require.NoError(t, dir.putFile("f", NewFile([]byte("old"))))
	require.NoError(t, dir.putFile("f", NewFile([]byte("new"))))

	node, exists := dir.Child("f")
	require.True(t, exists)
	assert.Equal(t, []byte("new"), node.(*File).Content())

	_, err := dir.mkdir("d")
	require.NoError(t, err)
	assert.ErrorIs(t, dir.putFile("d", NewFile(nil)), ErrNotAFile)
}

func TestFileContentIsCopied(t *testing.T) {
	data := []byte("hello")
	file := NewFile(data)
	data[0] = 'j'

	content := file.Content()
	assert.Equal(t, []byte("hello"), content)

	content[0] = 'y'
	assert.Equal(t, []byte("hello"), file.Content())
	assert.Equal(t, 5, file.Size())
}

func TestTreeAll(t *testing.T) {
	tree, err := Import(Entries(
		Entry{Name: "b/"},
		Entry{Name: "b/z/deep", Data: []byte("1")},
		Entry{Name: "a", Data: []byte("22")},
		Entry{Name: "b/y", Data: []byte("333")},
	))
	require.NoError(t, err)

	paths := []string{}
	for path := range tree.All() {
		paths = append(paths, path)
	}

	assert.Equal(t, []string{"/", "/b", "/a", "/b/z", "/b/y", "/b/z/deep"}, paths)
	assert.Equal(t, Stats{Directories: 3, Files: 3, Bytes: 6}, tree.Stats())
}

func TestTreeAllStops(t *testing.T) {
	tree, err := Import(Entries(Entry{Name: "a/b/c"}))
	require.NoError(t, err)

	count := 0
	for range tree.All() {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}
