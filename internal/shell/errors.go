// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell

import "errors"

var (
	// ErrUnknownCommand is returned for command names the shell does not
	// implement.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned if a command is called with missing arguments.
	ErrUsage = errors.New("usage")
)
