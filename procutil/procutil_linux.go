//go:build linux
// +build linux

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/prometheus/procfs"
)

const platform = "linux"

// findProcessID walks procfs in ascending pid order and matches name as a
// substring of the raw, NUL-separated command line.
func (d *Directory) findProcessID(name string) (uint32, int, error) {
	fs, err := procfs.NewFS(d.procRoot)
	if err != nil {
		return 0, 0, fmt.Errorf("open procfs at %s: %w", d.procRoot, err)
	}

	procs, err := fs.AllProcs()
	if err != nil {
		return 0, 0, fmt.Errorf("list processes: %w", err)
	}
	sort.Slice(procs, func(i, j int) bool { return procs[i].PID < procs[j].PID })

	scanned := 0
	for _, p := range procs {
		args, err := p.CmdLine()
		if err != nil {
			// exited between listing and reading
			continue
		}
		scanned++
		if strings.Contains(strings.Join(args, "\x00"), name) {
			return uint32(p.PID), scanned, nil
		}
	}

	return 0, scanned, ErrNotFound
}

// isRunning checks that the per-process cmdline record still exists.
func (d *Directory) isRunning(pid uint32) bool {
	_, err := os.Stat(filepath.Join(d.procRoot, strconv.FormatUint(uint64(pid), 10), "cmdline"))
	return err == nil
}
