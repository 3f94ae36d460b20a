// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil reads and writes file attribute flags and timestamps
// behind one contract on Windows and POSIX systems.
//
// # Attributes
//
// Attributes is a bit-set of Normal, Hidden and ReadOnly. On Windows the set
// maps straight onto the native attribute mask. On POSIX systems Hidden is the
// leading-dot naming convention and ReadOnly is the absence of write
// permission bits; Normal is never reported.
//
//	err := fileutil.SetAttributes("notes.txt", fileutil.Hidden|fileutil.ReadOnly)
//	p := fileutil.PathAfter("notes.txt", fileutil.Hidden) // ".notes.txt" on POSIX
//	attrs, err := fileutil.GetAttributes(p)              // [Hidden ReadOnly]
//
// Setting Hidden on POSIX renames the file. Anything holding the old path will
// no longer find it.
//
// # Timestamps
//
// FileTimeSpec is a partially specified timestamp. Fields left absent take
// the current wall-clock value when the call is made:
//
//	spec := fileutil.NewFileTime(25, 12, 2021).WithHour(9)
//	err := fileutil.SetModificationTime("notes.txt", spec)
//
// Windows writes the native FILETIME of the chosen slot. POSIX systems have no
// settable creation time, so SetCreationTime returns ErrUnsupported there;
// access and modification times are written with touch(1) using the
// YYYYMMDDhhmm.ss form produced by FormatTouchTime.
//
// # Errors
//
// Failures wrap ErrNotFound, ErrPermissionDenied or ErrUnsupported and carry
// the *fs.PathError of the native call. Paths the native encoding cannot
// represent fail with security.ErrInvalidPath before any call is made. The
// boolean helpers (SetAttribute, SetCreationDate, ...) collapse all of these
// into false.
//
// No locking is done. Concurrent writes to the same path must be serialized
// by the caller.
package fileutil
