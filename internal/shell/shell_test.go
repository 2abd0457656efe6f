// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package shell_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aibor/vfshell/internal/audit"
	"github.com/aibor/vfshell/internal/shell"
	"github.com/aibor/vfshell/internal/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	records []audit.Record
}

func (r *recorder) Record(_ context.Context, record audit.Record) {
	r.records = append(r.records, record)
}

func newSession(t *testing.T) *vfs.Session {
	t.Helper()

	tree, err := vfs.Import(vfs.Entries(
		vfs.Entry{Name: "notes.txt", Data: []byte("hello\n")},
		vfs.Entry{Name: "docs/readme.txt", Data: []byte("read me")},
		vfs.Entry{Name: "docs/empty/", IsDir: true},
		vfs.Entry{Name: "bin/blob", Data: []byte{0xff, 0xfe, 0x00}},
		vfs.Entry{Name: "my file.txt", Data: []byte("spaced")},
	))
	require.NoError(t, err)

	return vfs.NewSession(tree)
}

func newShell(t *testing.T, opts shell.Options) *shell.Shell {
	t.Helper()

	return shell.New(newSession(t), opts)
}

func TestShell_Execute(t *testing.T) {
	now := time.Date(2025, 3, 4, 5, 6, 7, 0, time.Local)

	tests := []struct {
		name        string
		lines       []string
		expected    string
		expectedErr error
	}{
		{
			name:     "empty line",
			lines:    []string{"   "},
			expected: "",
		},
		{
			name:  "ls root",
			lines: []string{"ls"},
			expected: "-644 notes.txt\n" +
				"d755 docs\n" +
				"d755 bin\n" +
				"-644 my file.txt",
		},
		{
			name:     "ls relative",
			lines:    []string{"cd docs", "ls"},
			expected: "-644 readme.txt\nd755 empty",
		},
		{
			name:     "ls empty directory",
			lines:    []string{"ls /docs/empty"},
			expected: "(empty)",
		},
		{
			name:        "ls missing",
			lines:       []string{"ls /missing"},
			expectedErr: vfs.ErrNotFound,
		},
		{
			name:        "ls file",
			lines:       []string{"ls /notes.txt"},
			expectedErr: vfs.ErrNotADirectory,
		},
		{
			name:     "cd",
			lines:    []string{"cd docs/empty/.."},
			expected: "moved to /docs",
		},
		{
			name:     "cd without argument",
			lines:    []string{"cd docs", "cd"},
			expected: "moved to /",
		},
		{
			name:     "cd with variable",
			lines:    []string{"cd $DIR"},
			expected: "moved to /docs",
		},
		{
			name:        "cd file",
			lines:       []string{"cd notes.txt"},
			expectedErr: vfs.ErrNotADirectory,
		},
		{
			name:     "cat text",
			lines:    []string{"cat /notes.txt"},
			expected: "hello",
		},
		{
			name:     "cat binary",
			lines:    []string{"cat bin/blob"},
			expected: "//4A",
		},
		{
			name:     "cat quoted",
			lines:    []string{"cat 'my file.txt'"},
			expected: "spaced",
		},
		{
			name:        "unbalanced quotes",
			lines:       []string{"cat 'notes.txt"},
			expectedErr: vfs.ErrNotFound,
		},
		{
			name:        "cat without argument",
			lines:       []string{"cat"},
			expectedErr: shell.ErrUsage,
		},
		{
			name:        "cat directory",
			lines:       []string{"cat docs"},
			expectedErr: vfs.ErrNotAFile,
		},
		{
			name:  "chmod",
			lines: []string{"chmod 600 notes.txt", "ls"},
			expected: "-600 notes.txt\n" +
				"d755 docs\n" +
				"d755 bin\n" +
				"-644 my file.txt",
		},
		{
			name:     "chmod output",
			lines:    []string{"chmod 0o700 docs"},
			expected: "permissions 0o700 set for 'docs'",
		},
		{
			name:        "chmod invalid mode",
			lines:       []string{"chmod 999 notes.txt"},
			expectedErr: vfs.ErrInvalidMode,
		},
		{
			name:        "chmod missing path",
			lines:       []string{"chmod 644 missing"},
			expectedErr: vfs.ErrNotFound,
		},
		{
			name:        "chmod without path",
			lines:       []string{"chmod 644"},
			expectedErr: shell.ErrUsage,
		},
		{
			name:     "whoami",
			lines:    []string{"whoami"},
			expected: "tester",
		},
		{
			name:     "date",
			lines:    []string{"date"},
			expected: "2025-03-04 05:06:07",
		},
		{
			name:     "history",
			lines:    []string{"cd docs", "  ls  ", "history"},
			expected: "   1  cd docs\n   2  ls",
		},
		{
			name:     "exit",
			lines:    []string{"exit"},
			expected: "exit",
		},
		{
			name:        "unknown command",
			lines:       []string{"rm -rf /"},
			expectedErr: shell.ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newShell(t, shell.Options{
				Getenv: func(key string) string {
					if key == "DIR" {
						return "/docs"
					}

					return ""
				},
				Now:  func() time.Time { return now },
				User: func() (string, error) { return "tester", nil },
			})

			var (
				output string
				err    error
			)

			for _, line := range tt.lines {
				output, err = sh.Execute(context.Background(), line)
			}

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, output)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestShell_Execute_FailedCommandKeepsState(t *testing.T) {
	session := newSession(t)
	sh := shell.New(session, shell.Options{})

	_, err := sh.Execute(context.Background(), "cd docs")
	require.NoError(t, err)

	_, err = sh.Execute(context.Background(), "cd /missing")
	require.ErrorIs(t, err, vfs.ErrNotFound)
	assert.Equal(t, "/docs", session.Cwd())

	_, err = sh.Execute(context.Background(), "chmod 1000 readme.txt")
	require.ErrorIs(t, err, vfs.ErrInvalidMode)

	node, err := session.Tree().Lookup("/docs/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, vfs.DefaultFileMode, node.Mode())
}

func TestShell_Execute_Audit(t *testing.T) {
	rec := &recorder{}
	sh := newShell(t, shell.Options{Audit: rec})

	for _, line := range []string{"ls /docs", "", "cat", "exit"} {
		_, _ = sh.Execute(context.Background(), line)
	}

	require.Len(t, rec.records, 3)

	assert.Equal(t, "ls", rec.records[0].Command)
	assert.Equal(t, []string{"/docs"}, rec.records[0].Args)
	require.NoError(t, rec.records[0].Err)

	assert.Equal(t, "cat", rec.records[1].Command)
	assert.Empty(t, rec.records[1].Args)
	require.ErrorIs(t, rec.records[1].Err, shell.ErrUsage)

	assert.Equal(t, "exit", rec.records[2].Command)

	assert.Equal(t, []string{"ls /docs", "cat", "exit"}, sh.History())
	assert.True(t, sh.Exited())
}

func TestShell_Execute_Color(t *testing.T) {
	var stdout bytes.Buffer

	sh := newShell(t, shell.Options{Stdout: &stdout, Color: true})

	output, err := sh.Execute(context.Background(), "ls /docs")
	require.NoError(t, err)

	assert.Contains(t, output, "-644 readme.txt")
	assert.Contains(t, output, "d755 \x1b[")
	assert.Contains(t, output, "empty\x1b[0m")
}
