// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package shell provides a small command interpreter on top of a
// [vfs.Session]. It supports the commands ls, cd, cat, chmod, whoami, date,
// history and exit, can run startup scripts and provides an interactive
// read-eval-print loop.
//
// Every executed command is written to an audit [Recorder].
package shell
