// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// DefaultPollInterval is used by WaitForExit when no interval is given.
const DefaultPollInterval = 250 * time.Millisecond

// WaitForExit blocks until pid is no longer running or ctx is done.
// Liveness is polled at most once per interval; a non-positive interval
// uses the directory's poll interval.
func (d *Directory) WaitForExit(ctx context.Context, pid uint32, interval time.Duration) error {
	if interval <= 0 {
		interval = d.pollInterval
	}
	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		if !d.IsProcessRunning(pid) {
			return nil
		}
		if err := limiter.Wait(ctx); err != nil {
			return fmt.Errorf("waiting for process %d to exit: %w", pid, err)
		}
	}
}

// WaitForExit waits on pid with the default directory.
func WaitForExit(ctx context.Context, pid int, interval time.Duration) error {
	if !IsProcessRunning(pid) {
		return nil
	}
	return defaultDirectory.WaitForExit(ctx, uint32(pid), interval)
}
