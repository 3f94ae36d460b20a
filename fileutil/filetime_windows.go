//go:build windows
// +build windows

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/jongio/sysext/security"
	"golang.org/x/sys/windows"
)

var (
	modkernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procSystemTimeToFileTime = modkernel32.NewProc("SystemTimeToFileTime")
)

// systemtime mirrors the Win32 SYSTEMTIME structure.
type systemtime struct {
	Year         uint16
	Month        uint16
	DayOfWeek    uint16
	Day          uint16
	Hour         uint16
	Minute       uint16
	Second       uint16
	Milliseconds uint16
}

// setTime opens path for attribute writes, overlays spec on the current UTC
// system time and writes only the requested timestamp.
func (s *Store) setTime(path string, kind timeKind, spec FileTimeSpec) error {
	if err := security.ValidateNativePath(path); err != nil {
		return err
	}

	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return classify("CreateFile", path, err)
	}

	handle, err := windows.CreateFile(name,
		windows.FILE_WRITE_ATTRIBUTES,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0)
	if err != nil {
		return classify("CreateFile", path, err)
	}
	defer func() { _ = windows.CloseHandle(handle) }()

	ft, err := toFiletime(spec.Resolve(s.now().UTC()))
	if err != nil {
		return classify("SystemTimeToFileTime", path, err)
	}

	switch kind {
	case creationTime:
		err = windows.SetFileTime(handle, &ft, nil, nil)
	case accessTime:
		err = windows.SetFileTime(handle, nil, &ft, nil)
	default:
		err = windows.SetFileTime(handle, nil, nil, &ft)
	}
	if err != nil {
		return classify("SetFileTime", path, err)
	}
	return nil
}

// toFiletime converts through the native call so out-of-range components are
// rejected by Windows rather than normalized.
func toFiletime(c Components) (windows.Filetime, error) {
	for _, v := range []int{c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Millisecond} {
		if v < 0 || v > math.MaxUint16 {
			return windows.Filetime{}, fmt.Errorf("%w: %+v: component %d does not fit SYSTEMTIME", ErrInvalidTime, c, v)
		}
	}

	st := systemtime{
		Year:         uint16(c.Year),
		Month:        uint16(c.Month),
		Day:          uint16(c.Day),
		Hour:         uint16(c.Hour),
		Minute:       uint16(c.Minute),
		Second:       uint16(c.Second),
		Milliseconds: uint16(c.Millisecond),
	}

	var ft windows.Filetime
	r, _, callErr := procSystemTimeToFileTime.Call(
		uintptr(unsafe.Pointer(&st)),
		uintptr(unsafe.Pointer(&ft)),
	)
	if r == 0 {
		return ft, fmt.Errorf("%w: %+v: %v", ErrInvalidTime, c, callErr)
	}
	return ft, nil
}
