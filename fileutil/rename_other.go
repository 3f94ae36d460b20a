//go:build !linux && !darwin && !windows
// +build !linux,!darwin,!windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

// renameNoReplace has no atomic form here; the existence check and the
// rename are separate calls.
func renameNoReplace(oldpath, newpath string) error {
	return checkedRename(oldpath, newpath)
}
