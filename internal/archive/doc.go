// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package archive reads archive files into [vfs.Entry] sequences.
//
// Supported are newc cpio archives as used for initramfs images and all
// formats [github.com/mholt/archiver/v4] can extract, like zip and optionally
// compressed tar. Only directories and regular files are read. Symbolic links
// and other special files are skipped.
package archive
