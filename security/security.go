// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security validates caller input before it reaches a native call.
package security

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidPath indicates a path the native encoding cannot represent.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInvalidName indicates an unusable process name.
	ErrInvalidName = errors.New("invalid process name")
)

// ValidateNativePath checks that path can be handed to the host's native
// file APIs without truncation or lossy conversion.
//
// Embedded NUL bytes are rejected everywhere since byte-string APIs would
// silently stop at the first one. On Windows, where paths are converted to
// UTF-16, invalid UTF-8 is rejected too.
func ValidateNativePath(path string) error {
	return validateNativePath(path, runtime.GOOS)
}

func validateNativePath(path, goos string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if i := strings.IndexByte(path, 0); i >= 0 {
		return fmt.Errorf("%w: NUL byte at offset %d", ErrInvalidPath, i)
	}

	if goos == "windows" && !utf8.ValidString(path) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidPath)
	}

	return nil
}

// ValidateProcessName checks a name used for process lookup.
func ValidateProcessName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("%w: contains NUL byte", ErrInvalidName)
	}
	return nil
}
