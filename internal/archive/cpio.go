// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aibor/vfshell/internal/vfs"
	"github.com/cavaliergopher/cpio"
)

const cpioMagicLen = 6

var cpioMagics = []string{
	"070701", // newc
	"070702", // newc with checksum
}

func isCPIO(source io.ReaderAt) bool {
	magic := make([]byte, cpioMagicLen)

	n, _ := source.ReadAt(magic, 0)
	if n != cpioMagicLen {
		return false
	}

	for _, m := range cpioMagics {
		if string(magic) == m {
			return true
		}
	}

	return false
}

func readCPIO(ctx context.Context, _ string, source Source, yield yieldFunc) error {
	reader := cpio.NewReader(source)

	for {
		if err := ctx.Err(); err != nil {
			return err //nolint:wrapcheck
		}

		hdr, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read cpio header: %w", err)
		}

		entry := vfs.Entry{Name: hdr.Name}

		mode := hdr.FileInfo().Mode()

		switch {
		case mode.IsDir():
			entry.IsDir = true
		case mode.IsRegular():
			entry.Data, err = readBody(hdr.Name, reader)
			if err != nil {
				return err
			}
		default:
			slog.Debug("Skip cpio entry",
				slog.String("name", hdr.Name),
				slog.String("mode", mode.String()),
			)

			continue
		}

		if err := emit(yield, entry); err != nil {
			return err
		}
	}
}
