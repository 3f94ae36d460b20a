//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/jongio/sysext/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileTimes(t *testing.T, path string) (created, accessed, written time.Time) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	data, ok := info.Sys().(*syscall.Win32FileAttributeData)
	require.True(t, ok)
	return time.Unix(0, data.CreationTime.Nanoseconds()).UTC(),
		time.Unix(0, data.LastAccessTime.Nanoseconds()).UTC(),
		time.Unix(0, data.LastWriteTime.Nanoseconds()).UTC()
}

func TestSetCreationTimeRoundTrip(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "c.txt", "x")
	_, _, writtenBefore := fileTimes(t, p)

	spec := NewFileTime(25, 12, 2021).WithHour(8).WithMinute(30).WithSecond(5).WithMillisecond(250)
	require.NoError(t, New().SetCreationTime(p, spec))

	created, _, written := fileTimes(t, p)
	want := time.Date(2021, 12, 25, 8, 30, 5, 250*int(time.Millisecond), time.UTC)
	assert.True(t, want.Equal(created), "creation = %v, want %v", created, want)
	assert.True(t, writtenBefore.Equal(written), "write time must be untouched")
}

func TestSetCreationTimeAbsentFieldsUseClock(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "clock.txt", "x")
	clock := func() time.Time { return time.Date(2019, 5, 6, 7, 8, 9, 10*int(time.Millisecond), time.UTC) }

	require.NoError(t, New(WithClock(clock)).SetCreationTime(p, NewFileTime(1, 2, 2003)))

	created, _, _ := fileTimes(t, p)
	want := time.Date(2003, 2, 1, 7, 8, 9, 10*int(time.Millisecond), time.UTC)
	assert.True(t, want.Equal(created), "creation = %v, want %v", created, want)
}

func TestSetModificationTimeRoundTrip(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "m.txt", "x")

	require.NoError(t, New().SetModificationTime(p, NewFileTime(15, 7, 2021).WithHour(10).WithMinute(20).WithSecond(30).WithMillisecond(0)))

	_, _, written := fileTimes(t, p)
	assert.True(t, time.Date(2021, 7, 15, 10, 20, 30, 0, time.UTC).Equal(written))
}

func TestOutOfRangeTimeIsSurfaced(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "bad.txt", "x")

	tests := []struct {
		name string
		spec FileTimeSpec
	}{
		{"month past december", NewFileTime(1, 13, 2021)},
		{"year wider than 16 bits", NewFileTime(1, 1, 67558)},
		{"negative month", NewFileTime(1, -65535, 2021)},
		{"negative hour", NewFileTime(1, 1, 2021).WithHour(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before, err := os.Stat(p)
			require.NoError(t, err)

			err = New().SetModificationTime(p, tt.spec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTime))

			after, err := os.Stat(p)
			require.NoError(t, err)
			assert.True(t, before.ModTime().Equal(after.ModTime()), "file time must be untouched")
		})
	}
}

func TestSetCreationTimeOnReadOnlyFile(t *testing.T) {
	dir := testutil.TempDir(t)
	p := testutil.WriteFile(t, dir, "ro.txt", "x")
	s := New()

	require.NoError(t, s.SetAttributes(p, ReadOnly))
	assert.NoError(t, s.SetCreationTime(p, NewFileTime(1, 1, 2020)))
}
