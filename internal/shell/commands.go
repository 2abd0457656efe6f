// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aibor/vfshell/internal/vfs"
)

const emptyListing = "(empty)"

func (s *Shell) list(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	entries, err := s.session.List(path)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if len(entries) == 0 {
		return emptyListing, nil
	}

	var out strings.Builder

	for idx, entry := range entries {
		if idx > 0 {
			out.WriteByte('\n')
		}

		prefix, name := "-", entry.Name
		if entry.Kind == vfs.KindDirectory {
			prefix, name = "d", s.dirColor.Sprint(entry.Name)
		}

		fmt.Fprintf(&out, "%s%s %s", prefix, entry.Mode, name)
	}

	return out.String(), nil
}

func (s *Shell) changeDirectory(args []string) (string, error) {
	path := vfs.Separator
	if len(args) > 0 {
		path = args[0]
	}

	cwd, err := s.session.ChangeDirectory(path)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return "moved to " + cwd, nil
}

func (s *Shell) readFile(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: cat FILE", ErrUsage)
	}

	content, err := s.session.ReadFile(args[0])
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if !utf8.Valid(content) {
		return base64.StdEncoding.EncodeToString(content), nil
	}

	return strings.TrimSuffix(string(content), "\n"), nil
}

func (s *Shell) setPermissions(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: chmod MODE FILE", ErrUsage)
	}

	mode, err := s.session.SetPermissions(args[0], args[1])
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	return fmt.Sprintf("permissions 0o%s set for '%s'", mode, args[1]), nil
}

func (s *Shell) whoami() (string, error) {
	name, err := s.opts.User()
	if err != nil {
		return "", fmt.Errorf("whoami: %w", err)
	}

	return name, nil
}

func (s *Shell) printHistory() string {
	lines := make([]string, 0, len(s.history))
	for idx, line := range s.history {
		lines = append(lines, fmt.Sprintf("%4d  %s", idx+1, line))
	}

	return strings.Join(lines, "\n")
}
