// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package audit provides a log for executed shell commands. Records are
// written as JSON lines.
package audit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/NYTimes/logrotate"
	"github.com/google/uuid"
)

const (
	recordMessage = "command"

	keySession = "session"
	keyCommand = "command"
	keyArgs    = "args"
	keyError   = "error"
)

// Record describes a single command invocation.
type Record struct {
	Command string
	Args    []string
	// Err is the error the command failed with, if any.
	Err error
}

// Logger writes [Record]s. Each Logger has a random session ID that is added
// to every record.
type Logger struct {
	logger  *slog.Logger
	closer  io.Closer
	session string
}

// New creates a new [Logger] that writes to the given [io.Writer].
func New(writer io.Writer) *Logger {
	session := uuid.NewString()
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return &Logger{
		logger:  slog.New(handler).With(slog.String(keySession, session)),
		session: session,
	}
}

// Open creates a new [Logger] that appends to the file at the given path.
// The file is reopened on SIGHUP, so it can be rotated. If path is empty,
// records are discarded.
func Open(path string) (*Logger, error) {
	if path == "" {
		return New(io.Discard), nil
	}

	file, err := logrotate.NewFile(path)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}

	logger := New(file)
	logger.closer = file

	return logger, nil
}

// Session returns the session ID of the [Logger].
func (l *Logger) Session() string {
	return l.session
}

// Record writes the given [Record]. Write errors are ignored.
func (l *Logger) Record(ctx context.Context, record Record) {
	args := record.Args
	if args == nil {
		args = []string{}
	}

	var errMsg any
	if record.Err != nil {
		errMsg = record.Err.Error()
	}

	l.logger.LogAttrs(ctx, slog.LevelInfo, recordMessage,
		slog.String(keyCommand, record.Command),
		slog.Any(keyArgs, args),
		slog.Any(keyError, errMsg),
	)
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	err := l.closer.Close()
	if err != nil {
		return fmt.Errorf("close audit log: %w", err)
	}

	return nil
}
