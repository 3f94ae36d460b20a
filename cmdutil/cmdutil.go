// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmdutil runs the external utilities some platforms need for
// metadata writes (for example touch(1) for POSIX timestamps).
package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single utility invocation.
const DefaultTimeout = 10 * time.Second

var (
	// ErrCommandNotFound indicates the utility is not installed or not on PATH.
	ErrCommandNotFound = errors.New("command not found")
	// ErrCommandFailed indicates the utility ran and exited unsuccessfully.
	ErrCommandFailed = errors.New("command failed")
)

// RunCommandWithOutput runs a command and returns its combined output.
// The command inherits environment variables from the parent process.
func RunCommandWithOutput(ctx context.Context, name string, args []string, dir string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	output, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return output, fmt.Errorf("%w: %s", ErrCommandNotFound, name)
		}
		msg := strings.TrimSpace(string(output))
		if msg == "" {
			return output, fmt.Errorf("%w: %s: %w", ErrCommandFailed, name, err)
		}
		return output, fmt.Errorf("%w: %s: %w (output: %s)", ErrCommandFailed, name, err, msg)
	}

	return output, nil
}
