//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// writeBits are the owner, group and other write permissions.
const writeBits fs.FileMode = 0o222

// statAttributes derives the attribute set from the file name and mode.
func (s *Store) statAttributes(path string) (Attributes, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, classify("stat", path, err)
	}

	var attrs Attributes
	if isDotName(path) {
		attrs |= Hidden
	}
	if info.Mode().Perm()&writeBits == 0 {
		attrs |= ReadOnly
	}
	return attrs, nil
}

func (s *Store) setAttributes(path string, attrs Attributes) error {
	info, err := os.Stat(path)
	if err != nil {
		return classify("stat", path, err)
	}

	hide := attrs.Has(Hidden) && !isDotName(path)
	target := hiddenPath(path)
	if hide {
		if _, err := os.Lstat(target); err == nil {
			return classify("rename", path, fmt.Errorf("%w: %s", ErrHiddenNameTaken, target))
		}
	}

	// ReadOnly goes first so a combined request still chmods the original path.
	chmodded := false
	if attrs.Has(ReadOnly) && info.Mode().Perm()&writeBits != 0 {
		if err := os.Chmod(path, info.Mode()&^writeBits); err != nil {
			return classify("chmod", path, err)
		}
		chmodded = true
	}

	if hide {
		if err := renameNoReplace(path, target); err != nil {
			if chmodded {
				_ = os.Chmod(path, info.Mode())
			}
			if errors.Is(err, fs.ErrExist) {
				err = fmt.Errorf("%w: %s", ErrHiddenNameTaken, target)
			}
			return classify("rename", path, err)
		}
	}

	return nil
}

// PathAfter returns where the file at path lives once SetAttributes(path,
// attrs) has succeeded. Only Hidden moves a file.
func PathAfter(path string, attrs Attributes) string {
	if attrs.Has(Hidden) && !isDotName(path) {
		return hiddenPath(path)
	}
	return path
}

func hiddenPath(path string) string {
	clean := filepath.Clean(path)
	return filepath.Join(filepath.Dir(clean), "."+filepath.Base(clean))
}

func isDotName(path string) bool {
	base := filepath.Base(filepath.Clean(path))
	return strings.HasPrefix(base, ".") && base != "." && base != ".."
}
