//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

const platform = "windows"

// waitTimeout is the WAIT_TIMEOUT event returned while the process is alive.
const waitTimeout = 0x00000102

// findProcessID walks a Toolhelp snapshot and compares name against the first
// whitespace-delimited token of each executable name.
func (d *Directory) findProcessID(name string) (uint32, int, error) {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return 0, 0, fmt.Errorf("create process snapshot: %w", err)
	}
	defer func() { _ = windows.CloseHandle(snapshot) }()

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))

	scanned := 0
	for err = windows.Process32First(snapshot, &entry); err == nil; err = windows.Process32Next(snapshot, &entry) {
		scanned++
		if exeToken(windows.UTF16ToString(entry.ExeFile[:])) == name {
			return entry.ProcessID, scanned, nil
		}
	}
	if !errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return 0, scanned, fmt.Errorf("walk process snapshot: %w", err)
	}

	return 0, scanned, ErrNotFound
}

// isRunning opens a wait handle and polls it with a zero timeout. Only a
// timed-out wait means the process is still running.
func (d *Directory) isRunning(pid uint32) bool {
	handle, err := windows.OpenProcess(windows.SYNCHRONIZE, false, pid)
	if err != nil {
		return false
	}
	defer func() { _ = windows.CloseHandle(handle) }()

	event, err := windows.WaitForSingleObject(handle, 0)
	return err == nil && event == waitTimeout
}

func exeToken(exe string) string {
	fields := strings.Fields(exe)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
