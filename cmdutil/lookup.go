// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmdutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// systemDirs are searched when a utility is not on PATH, which happens
// under service managers and cron that start processes with a minimal PATH.
var systemDirs = []string{"/usr/bin", "/bin", "/usr/local/bin", "/opt/homebrew/bin", "/usr/sbin", "/sbin"}

// LookupTool returns the full path of a utility, or "" if it cannot be
// found. Names containing a path separator are checked as given. Otherwise
// PATH is searched first and then the common system directories.
func LookupTool(name string) string {
	if name == "" {
		return ""
	}

	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		if isExecutable(name) {
			return name
		}
		return ""
	}

	if p, err := exec.LookPath(name); err == nil {
		return p
	}

	if runtime.GOOS == "windows" {
		return ""
	}
	for _, dir := range systemDirs {
		candidate := filepath.Join(dir, name)
		if isExecutable(candidate) {
			return candidate
		}
	}
	return ""
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
