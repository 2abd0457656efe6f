// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/aibor/vfshell/internal/vfs"
)

// Source is an archive that supports random access like [os.File] and
// [bytes.Reader].
type Source interface {
	io.Reader
	io.ReaderAt
	io.Seeker
}

type yieldFunc func(vfs.Entry, error) bool

// Load imports the archive file at the given path into a new [vfs.Tree].
//
// Errors are returned as [vfs.LoadError] with the archive path set.
func Load(ctx context.Context, path string) (*vfs.Tree, error) {
	tree, err := vfs.Import(Entries(ctx, path))
	if err != nil {
		var loadErr *vfs.LoadError
		if errors.As(err, &loadErr) {
			loadErr.Archive = path
		}

		return nil, err
	}

	stats := tree.Stats()
	slog.Debug("Loaded archive",
		slog.String("path", path),
		slog.Int("directories", stats.Directories),
		slog.Int("files", stats.Files),
		slog.Int("bytes", stats.Bytes),
	)

	return tree, nil
}

// Entries returns an iterator over the entries of the archive file at the
// given path.
//
// Any error stops the iteration and is yielded as last element.
func Entries(ctx context.Context, path string) iter.Seq2[vfs.Entry, error] {
	return func(yield func(vfs.Entry, error) bool) {
		file, err := os.Open(path)
		if err != nil {
			yield(vfs.Entry{}, fmt.Errorf("open: %w", err))
			return
		}
		defer file.Close()

		for entry, err := range Read(ctx, path, file) {
			if !yield(entry, err) {
				return
			}
		}
	}
}

// Read returns an iterator over the entries of the given archive [Source].
// The name is used as hint for identifying the format.
//
// Any error stops the iteration and is yielded as last element.
func Read(ctx context.Context, name string, source Source) iter.Seq2[vfs.Entry, error] {
	return func(yield func(vfs.Entry, error) bool) {
		read := readExtractable
		if isCPIO(source) {
			read = readCPIO
		}

		// Extractors might not wrap the handler's error, so do not rely on
		// errStopped being returned.
		stopped := false
		guarded := func(entry vfs.Entry, err error) bool {
			if stopped || !yield(entry, err) {
				stopped = true
				return false
			}

			return true
		}

		err := read(ctx, name, source, guarded)
		if err != nil && !stopped {
			yield(vfs.Entry{}, err)
		}
	}
}

func emit(yield yieldFunc, entry vfs.Entry) error {
	slog.Debug("Read archive entry",
		slog.String("name", entry.Name),
		slog.Bool("dir", entry.IsDir),
		slog.Int("size", len(entry.Data)),
	)

	if !yield(entry, nil) {
		return errStopped
	}

	return nil
}

func readBody(name string, body io.Reader) ([]byte, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("read body for %s: %w", name, err)
	}

	return data, nil
}
