//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jongio/sysext/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHiddenRenamesToDotName(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "se.test", "Howdy")
	s := New()

	require.NoError(t, s.SetAttributes(p, Hidden))

	hidden := filepath.Join(dir, ".se.test")
	assert.Equal(t, hidden, PathAfter(p, Hidden))
	assert.NoFileExists(t, p, "old path must stop resolving")
	assert.FileExists(t, hidden)

	assert.False(t, s.HasAttribute(p, Hidden))
	assert.True(t, s.HasAttribute(hidden, Hidden))

	data, err := os.ReadFile(hidden)
	require.NoError(t, err)
	assert.Equal(t, "Howdy", string(data))
}

func TestSetHiddenRelativePathStaysInDirectory(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.WriteFile(t, dir, "rel.txt", "x")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	require.NoError(t, New().SetAttributes(filepath.Join(".", "rel.txt"), Hidden))
	assert.FileExists(t, filepath.Join(dir, ".rel.txt"))
}

func TestSetHiddenRefusesToOverwrite(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "a.txt", "visible")
	testutil.WriteFile(t, dir, ".a.txt", "already hidden")

	err := New().SetAttributes(p, Hidden)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHiddenNameTaken))

	data, err := os.ReadFile(filepath.Join(dir, ".a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "already hidden", string(data))
	assert.FileExists(t, p)
}

func TestHiddenReadOnlyRefusalLeavesModeAlone(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "a.txt", "visible")
	require.NoError(t, os.Chmod(p, 0o644))
	testutil.WriteFile(t, dir, ".a.txt", "already hidden")

	err := New().SetAttributes(p, Hidden|ReadOnly)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHiddenNameTaken))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm(), "failed call must not leave the file read-only")
}

func TestReadOnlyRestoredWhenRenameFails(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can rename inside a read-only directory")
	}

	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "b.txt", "x")
	require.NoError(t, os.Chmod(p, 0o644))
	require.NoError(t, os.Chmod(dir, 0o555))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := New().SetAttributes(p, Hidden|ReadOnly)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPermissionDenied))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	assert.NoFileExists(t, filepath.Join(dir, ".b.txt"))
}

func TestRenameNoReplace(t *testing.T) {
	dir := testutil.TempDir(t)
	src := testutil.WriteFile(t, dir, "c.txt", "source")
	dst := testutil.WriteFile(t, dir, ".c.txt", "existing")

	err := renameNoReplace(src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrExist))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
	assert.FileExists(t, src)

	fresh := filepath.Join(dir, ".d.txt")
	require.NoError(t, renameNoReplace(src, fresh))
	assert.FileExists(t, fresh)
	assert.NoFileExists(t, src)
}

func TestSetReadOnlyClearsWriteBits(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "ro.txt", "keep me")
	require.NoError(t, os.Chmod(p, 0o664))

	require.NoError(t, New().SetAttributes(p, ReadOnly))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o444), info.Mode().Perm())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data), "contents must survive")
}

func TestReadOnlyAndHiddenTogether(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "both.txt", "x")
	s := New()

	require.NoError(t, s.SetAttributes(p, Hidden|ReadOnly))

	attrs, err := s.GetAttributes(filepath.Join(dir, ".both.txt"))
	require.NoError(t, err)
	assert.Equal(t, []Attributes{Hidden, ReadOnly}, attrs)
}

func TestNormalIsNeverReported(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "n.txt", "x")
	s := New()

	require.NoError(t, s.SetAttributes(p, Normal))
	assert.False(t, s.HasAttribute(p, Normal))

	attrs, err := s.GetAttributes(p)
	require.NoError(t, err)
	assert.Empty(t, attrs)
	assert.FileExists(t, p)
}

func TestIsDotName(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".bashrc", true},
		{"/home/u/.config", true},
		{"dir/.hidden/", true},
		{"visible.txt", false},
		{"/tmp/.dir/visible", false},
		{".", false},
		{"..", false},
		{"./x", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isDotName(tt.path))
		})
	}
}
