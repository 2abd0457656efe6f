// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const commentPrefix = "#"

// RunScript executes the script file at the given path line by line.
//
// Empty lines and lines starting with "#" are skipped. Each command is echoed
// with its line number before its output is printed. Failing commands are
// reported on stderr and do not stop the script. The script ends early on
// exit or if the context is canceled.
func (s *Shell) RunScript(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	defer file.Close()

	err = s.runScript(ctx, file)
	if err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}

	return nil
}

func (s *Shell) runScript(ctx context.Context, script io.Reader) error {
	scanner := bufio.NewScanner(script)
	lineNum := 0

	for scanner.Scan() {
		lineNum++

		if ctx.Err() != nil || s.exited {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fmt.Fprintf(s.opts.Stdout, "\n[%d] > %s\n", lineNum, line)

		s.print(s.Execute(ctx, line))
	}

	err := scanner.Err()
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	return nil
}

// print writes the result of a command.
func (s *Shell) print(output string, err error) {
	if output != "" {
		fmt.Fprintln(s.opts.Stdout, output)
	}

	if err != nil {
		fmt.Fprintf(s.opts.Stderr, "error: %v\n", err)
	}
}
