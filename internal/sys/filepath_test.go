// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/shimrun/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsolutePath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:        "empty",
			expectedErr: sys.ErrEmptyPath,
		},
		{
			name:     "absolute",
			input:    "/some/path",
			expected: "/some/path",
		},
		{
			name:     "relative",
			input:    "some/path",
			expected: filepath.Join(wd, "some/path"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := sys.AbsolutePath(tt.input)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name        string
		dir         string
		path        string
		expected    string
		expectedErr error
	}{
		{
			name:        "empty",
			dir:         "/opt/app",
			expectedErr: sys.ErrEmptyPath,
		},
		{
			name:     "relative",
			dir:      "/opt/app",
			path:     "main.py",
			expected: "/opt/app/main.py",
		},
		{
			name:     "relative subdir",
			dir:      "/opt/app",
			path:     "lib/../src/main.py",
			expected: "/opt/app/src/main.py",
		},
		{
			name:     "absolute",
			dir:      "/opt/app",
			path:     "/usr/share/app/main.py",
			expected: "/usr/share/app/main.py",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := sys.JoinPath(tt.dir, tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestValidateFilePath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "regular file",
			path: file,
		},
		{
			name:        "directory",
			path:        dir,
			expectedErr: sys.ErrNotRegularFile,
		},
		{
			name:        "missing",
			path:        filepath.Join(dir, "missing"),
			expectedErr: os.ErrNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sys.ValidateFilePath(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}
