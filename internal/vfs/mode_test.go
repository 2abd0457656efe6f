// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package vfs_test

import (
	"io/fs"
	"testing"

	"github.com/aibor/vfshell/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input       string
		expected    vfs.Mode
		expectedErr error
	}{
		{input: "700", expected: 0o700},
		{input: "644", expected: 0o644},
		{input: "0755", expected: 0o755},
		{input: "0o640", expected: 0o640},
		{input: "0O600", expected: 0o600},
		{input: "0", expected: 0},
		{input: "777", expected: 0o777},
		{input: "1000", expectedErr: vfs.ErrInvalidMode},
		{input: "abc", expectedErr: vfs.ErrInvalidMode},
		{input: "789", expectedErr: vfs.ErrInvalidMode},
		{input: "-1", expectedErr: vfs.ErrInvalidMode},
		{input: "+7", expectedErr: vfs.ErrInvalidMode},
		{input: "0o", expectedErr: vfs.ErrInvalidMode},
		{input: "", expectedErr: vfs.ErrInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := vfs.ParseMode(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, mode)
		})
	}
}

func TestMode(t *testing.T) {
	assert.Equal(t, "755", vfs.DefaultDirectoryMode.String())
	assert.Equal(t, "644", vfs.DefaultFileMode.String())
	assert.Equal(t, "007", vfs.Mode(0o7).String())
	assert.Equal(t, fs.FileMode(0o640), vfs.Mode(0o640).FileMode())
	assert.True(t, vfs.ModePerm.Valid())
	assert.False(t, vfs.Mode(0o1000).Valid())
}
