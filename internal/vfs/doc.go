// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package vfs provides an in-memory virtual file tree that is built once from
// archive entries and then navigated by a [Session].
//
// The tree consists of [Directory] and [File] nodes only. Once imported, the
// structure of the tree does not change anymore. Only the permission bits of
// nodes may be modified with [Session.SetPermissions].
//
// Paths are always "/" separated. [Normalize] turns any absolute or relative
// path into the canonical absolute form the [Tree] works with.
package vfs
