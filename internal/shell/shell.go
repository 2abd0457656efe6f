// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/aibor/vfshell/internal/audit"
	"github.com/aibor/vfshell/internal/vfs"
	"github.com/fatih/color"
	sh "mvdan.cc/sh/v3/shell"
)

// DefaultName is the name used in the prompt if none is given.
const DefaultName = "vfs"

// Recorder records executed commands.
type Recorder interface {
	Record(ctx context.Context, record audit.Record)
}

type discardRecorder struct{}

func (discardRecorder) Record(context.Context, audit.Record) {}

// Options configure a [Shell]. Zero values are replaced by defaults in [New].
type Options struct {
	// Name is shown in the prompt.
	Name string

	Stdout io.Writer
	Stderr io.Writer

	// Audit receives one record per executed command.
	Audit Recorder

	// Getenv is used for variable expansion in command lines.
	Getenv func(key string) string

	// Now returns the time printed by the date command.
	Now func() time.Time

	// User returns the name printed by the whoami command.
	User func() (string, error)

	// Color enables colored directory names in listings.
	Color bool

	// Interactive enables the banner and the prompt in [Shell.Run].
	Interactive bool
}

func (o *Options) setDefaults() {
	if o.Name == "" {
		o.Name = DefaultName
	}

	if o.Stdout == nil {
		o.Stdout = io.Discard
	}

	if o.Stderr == nil {
		o.Stderr = io.Discard
	}

	if o.Audit == nil {
		o.Audit = discardRecorder{}
	}

	if o.Getenv == nil {
		o.Getenv = os.Getenv
	}

	if o.Now == nil {
		o.Now = time.Now
	}

	if o.User == nil {
		o.User = currentUser
	}
}

// Shell executes command lines on a [vfs.Session].
type Shell struct {
	session  *vfs.Session
	opts     Options
	dirColor *color.Color
	history  []string
	exited   bool
}

// New creates a new [Shell] operating on the given session.
func New(session *vfs.Session, opts Options) *Shell {
	opts.setDefaults()

	dirColor := color.New(color.FgBlue, color.Bold)
	if opts.Color {
		dirColor.EnableColor()
	} else {
		dirColor.DisableColor()
	}

	return &Shell{
		session:  session,
		opts:     opts,
		dirColor: dirColor,
	}
}

// Exited reports whether the exit command has been executed.
func (s *Shell) Exited() bool {
	return s.exited
}

// History returns the command lines executed so far.
func (s *Shell) History() []string {
	return append([]string(nil), s.history...)
}

// Execute runs a single command line and returns its output.
//
// Empty lines are ignored. The returned error is the error of the command
// itself. A failed command does not change the session state.
func (s *Shell) Execute(ctx context.Context, line string) (string, error) {
	words := s.split(line)
	if len(words) == 0 {
		return "", nil
	}

	name, args := words[0], words[1:]

	output, err := s.dispatch(name, args)

	s.opts.Audit.Record(ctx, audit.Record{
		Command: name,
		Args:    args,
		Err:     err,
	})

	s.history = append(s.history, strings.TrimSpace(line))

	return output, err
}

// split splits the line into words with shell quoting and variable
// expansion. Lines that fail to parse are split at white space.
func (s *Shell) split(line string) []string {
	words, err := sh.Fields(line, s.opts.Getenv)
	if err != nil {
		slog.Debug("Fall back to plain word splitting",
			slog.String("line", line),
			slog.Any("error", err),
		)

		return strings.Fields(line)
	}

	return words
}

func (s *Shell) dispatch(name string, args []string) (string, error) {
	switch name {
	case "ls":
		return s.list(args)
	case "cd":
		return s.changeDirectory(args)
	case "cat":
		return s.readFile(args)
	case "chmod":
		return s.setPermissions(args)
	case "whoami":
		return s.whoami()
	case "date":
		return s.opts.Now().Format(time.DateTime), nil
	case "history":
		return s.printHistory(), nil
	case "exit":
		s.exited = true
		return "exit", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
}

func currentUser() (string, error) {
	current, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("current user: %w", err)
	}

	return current.Username, nil
}
