//go:build !linux && !windows
// +build !linux,!windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"fmt"
	"math"
	"runtime"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

var platform = runtime.GOOS

// findProcessID lists processes through gopsutil (sysctl on darwin and the
// BSDs) and matches name as a substring of each command line.
func (d *Directory) findProcessID(name string) (uint32, int, error) {
	pids, err := process.Pids()
	if err != nil {
		return 0, 0, fmt.Errorf("list processes: %w", err)
	}
	sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })

	scanned := 0
	for _, pid := range pids {
		if pid <= 0 {
			continue
		}
		p, err := process.NewProcess(pid)
		if err != nil {
			continue
		}
		cmdline, err := p.Cmdline()
		if err != nil {
			continue
		}
		scanned++
		if strings.Contains(cmdline, name) {
			return uint32(pid), scanned, nil
		}
	}

	return 0, scanned, ErrNotFound
}

func (d *Directory) isRunning(pid uint32) bool {
	if pid > math.MaxInt32 {
		return false
	}
	ok, err := process.PidExists(int32(pid))
	return err == nil && ok
}
