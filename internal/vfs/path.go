// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs

import (
	"strings"
)

// Separator separates path segments.
const Separator = "/"

// Normalize returns the canonical absolute path for the given path.
//
// Relative paths are resolved against current. Empty and "." segments are
// dropped and ".." removes the preceding segment. Excess ".." segments are
// ignored, so the result never leaves the root. The result has no trailing
// separator, unless it is the root itself.
func Normalize(path, current string) string {
	if !strings.HasPrefix(path, Separator) {
		path = current + Separator + path
	}

	resolved := make([]string, 0, strings.Count(path, Separator))

	for segment := range strings.SplitSeq(path, Separator) {
		switch segment {
		case "", ".":
		case "..":
			if len(resolved) > 0 {
				resolved = resolved[:len(resolved)-1]
			}
		default:
			resolved = append(resolved, segment)
		}
	}

	return Separator + strings.Join(resolved, Separator)
}

// IsRoot returns true if the given canonical path is the root.
func IsRoot(path string) bool {
	return path == Separator
}

func childPath(parent, name string) string {
	if IsRoot(parent) {
		return Separator + name
	}

	return parent + Separator + name
}
