// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// Mode is the permission mode of a node. Only the 9 permission bits are used.
type Mode uint32

const (
	// ModePerm is the highest valid [Mode].
	ModePerm Mode = 0o777

	// DefaultDirectoryMode is the mode new directories are created with.
	DefaultDirectoryMode Mode = 0o755

	// DefaultFileMode is the mode new files are created with.
	DefaultFileMode Mode = 0o644
)

// ParseMode parses the given octal string into a [Mode]. An optional "0o"
// prefix is accepted. Returns ErrInvalidMode if the string is not octal or the
// value exceeds [ModePerm].
func ParseMode(s string) (Mode, error) {
	digits := s
	if len(digits) > 2 && strings.EqualFold(digits[:2], "0o") {
		digits = digits[2:]
	}

	value, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}

	mode := Mode(value)
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: %q exceeds %s", ErrInvalidMode, s, ModePerm)
	}

	return mode, nil
}

// Valid returns true if the [Mode] is within the permission bits range.
func (m Mode) Valid() bool {
	return m <= ModePerm
}

// String returns the mode as 3 digit octal number.
func (m Mode) String() string {
	return fmt.Sprintf("%03o", uint32(m))
}

// FileMode returns the [fs.FileMode] permission bits for the [Mode].
func (m Mode) FileMode() fs.FileMode {
	return fs.FileMode(m) & fs.ModePerm
}
