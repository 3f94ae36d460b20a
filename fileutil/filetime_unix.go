//go:build !windows
// +build !windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"context"
	"fmt"
	"os"

	"github.com/jongio/sysext/security"
)

// setTime delegates access and modification writes to touch(1). POSIX
// filesystems expose no settable creation time.
func (s *Store) setTime(path string, kind timeKind, spec FileTimeSpec) error {
	if kind == creationTime {
		return fmt.Errorf("file creation time: %w", ErrUnsupported)
	}

	if err := security.ValidateNativePath(path); err != nil {
		return err
	}

	// touch creates missing files; refuse instead.
	if _, err := os.Stat(path); err != nil {
		return classify("stat", path, err)
	}

	flag := "-m"
	if kind == accessTime {
		flag = "-a"
	}

	stamp := FormatTouchTime(spec, s.now())
	if _, err := s.touch.Run(context.Background(), flag, "-t", stamp, "--", path); err != nil {
		return classify("touch", path, err)
	}
	return nil
}
