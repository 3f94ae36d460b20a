// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"runtime"
)

var (
	// ErrNotFound indicates the path does not exist.
	ErrNotFound = errors.New("path not found")
	// ErrPermissionDenied indicates the native call was refused.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrUnsupported indicates the operation has no meaning on this platform.
	// It wraps errors.ErrUnsupported.
	ErrUnsupported = fmt.Errorf("not supported on %s: %w", runtime.GOOS, errors.ErrUnsupported)
	// ErrInvalidTime indicates the native time conversion rejected a
	// timestamp component.
	ErrInvalidTime = errors.New("invalid file time")
	// ErrHiddenNameTaken indicates hiding a file would overwrite another file
	// that already uses the dot-prefixed name.
	ErrHiddenNameTaken = errors.New("hidden name already in use")
)

// classify wraps a native failure as a *fs.PathError and tags it with the
// matching sentinel so callers can test the cause with errors.Is.
func classify(op, path string, err error) error {
	if err == nil {
		return nil
	}

	var pe *fs.PathError
	if !errors.As(err, &pe) {
		pe = &fs.PathError{Op: op, Path: path, Err: err}
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, pe)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, pe)
	default:
		return pe
	}
}
