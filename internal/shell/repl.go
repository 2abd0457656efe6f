// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"
)

const banner = `==================================================
vfshell: in-memory VFS shell
commands: ls, cd, cat, chmod, whoami, date, history, exit
==================================================`

// Run reads command lines from input and executes them until exit is called,
// input is exhausted or the context is canceled.
//
// Reading input happens in a separate goroutine, so cancellation is not
// blocked by pending reads. If input blocks, that goroutine is left behind
// until the next read returns.
func (s *Shell) Run(ctx context.Context, input io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)

	var reader errgroup.Group

	reader.Go(func() error {
		return readLines(ctx, input, lines)
	})

	if s.opts.Interactive {
		fmt.Fprintln(s.opts.Stdout, banner)
	}

	for !s.exited {
		s.prompt()

		select {
		case <-ctx.Done():
			slog.Debug("Shell canceled", slog.Any("cause", context.Cause(ctx)))
			s.endInteractive()

			return nil
		case line, ok := <-lines:
			if !ok {
				s.endInteractive()

				err := reader.Wait()
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}

				return nil
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			s.print(s.Execute(ctx, line))
		}
	}

	return nil
}

func (s *Shell) prompt() {
	if s.opts.Interactive {
		fmt.Fprintf(s.opts.Stdout, "%s > ", s.opts.Name)
	}
}

// endInteractive terminates the pending prompt line.
func (s *Shell) endInteractive() {
	if s.opts.Interactive {
		fmt.Fprintln(s.opts.Stdout)
	}
}

func readLines(ctx context.Context, input io.Reader, lines chan<- string) error {
	defer close(lines)

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return nil
		}
	}

	return scanner.Err() //nolint:wrapcheck
}
