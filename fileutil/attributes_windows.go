//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"golang.org/x/sys/windows"
)

// statAttributes reads the native attribute mask and keeps the known bits.
func (s *Store) statAttributes(path string) (Attributes, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, classify("GetFileAttributes", path, err)
	}

	bits, err := windows.GetFileAttributes(name)
	if err != nil {
		return 0, classify("GetFileAttributes", path, err)
	}

	return Attributes(bits) & known, nil
}

// setAttributes replaces the native attribute mask with attrs.
func (s *Store) setAttributes(path string, attrs Attributes) error {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return classify("SetFileAttributes", path, err)
	}

	bits := uint32(attrs)
	if attrs != Normal {
		bits &^= windows.FILE_ATTRIBUTE_NORMAL
	}

	if err := windows.SetFileAttributes(name, bits); err != nil {
		return classify("SetFileAttributes", path, err)
	}
	return nil
}

// PathAfter returns where the file at path lives once SetAttributes(path,
// attrs) has succeeded. Attribute changes never move a file on Windows.
func PathAfter(path string, _ Attributes) string {
	return path
}
