// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package archive

import (
	"errors"
)

var (
	// ErrUnknownFormat is returned if the archive format can not be
	// identified or is not extractable.
	ErrUnknownFormat = errors.New("unknown archive format")

	// errStopped is used to abort extraction once the consumer stopped the
	// iteration.
	errStopped = errors.New("iteration stopped")
)
