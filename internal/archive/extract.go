// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"archive/tar"
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/aibor/vfshell/internal/vfs"
	zip2 "github.com/klauspost/compress/zip"
	"github.com/mholt/archiver/v4"
)

func readExtractable(ctx context.Context, name string, source Source, yield yieldFunc) error {
	format, _, err := archiver.Identify(filepath.Base(name), source)
	if err != nil {
		if errors.Is(err, archiver.ErrNoMatch) {
			return fmt.Errorf("%w: %s", ErrUnknownFormat, name)
		}

		return fmt.Errorf("identify: %w", err)
	}

	extractor, ok := format.(archiver.Extractor)
	if !ok {
		return fmt.Errorf("%w: %s is not an archive", ErrUnknownFormat, format.Name())
	}

	// Identify consumed the head of the stream. Extractors always start from
	// the beginning and zip requires random access anyway.
	if _, err := source.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind: %w", err)
	}

	err = extractor.Extract(ctx, source, nil, func(_ context.Context, f archiver.File) error {
		return handleFile(f, yield)
	})
	if err != nil {
		return fmt.Errorf("extract %s: %w", format.Name(), err)
	}

	return nil
}

func handleFile(f archiver.File, yield yieldFunc) error {
	name := nameInArchive(f)
	entry := vfs.Entry{Name: name}

	switch {
	case f.IsDir():
		entry.IsDir = true
	case f.Mode().IsRegular():
		body, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %s: %w", name, err)
		}
		defer body.Close()

		entry.Data, err = readBody(name, body)
		if err != nil {
			return err
		}
	default:
		slog.Debug("Skip archive entry",
			slog.String("name", name),
			slog.String("mode", f.Mode().String()),
		)

		return nil
	}

	return emit(yield, entry)
}

// nameInArchive returns the full name of the file in the archive. The
// [archiver.File.Name] is the base name only, so the header is used where
// available.
func nameInArchive(f archiver.File) string {
	switch hdr := f.Sys().(type) {
	case *zip.FileHeader:
		return hdr.Name
	case *zip2.FileHeader:
		return hdr.Name
	case *tar.Header:
		return hdr.Name
	default:
		return f.Name()
	}
}
