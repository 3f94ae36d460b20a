// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"fmt"
	"time"
)

// Field is an optional calendar component. The zero value is absent.
type Field struct {
	value int
	set   bool
}

// Value returns a Field holding v. No range check is applied.
func Value(v int) Field {
	return Field{value: v, set: true}
}

// Get returns the value and whether it is set.
func (f Field) Get() (int, bool) {
	return f.value, f.set
}

// IsSet reports whether the field holds a value.
func (f Field) IsSet() bool {
	return f.set
}

// Or returns the value if set, otherwise def.
func (f Field) Or(def int) int {
	if f.set {
		return f.value
	}
	return def
}

func (f Field) String() string {
	if !f.set {
		return "-"
	}
	return fmt.Sprint(f.value)
}

// FileTimeSpec is a partially specified timestamp used to set a file's
// creation, access or modification time. Absent fields resolve to the
// current wall-clock component at the time of the call, not to zero and not
// to the file's existing timestamp.
type FileTimeSpec struct {
	Day         Field
	Month       Field
	Year        Field
	Hour        Field
	Minute      Field
	Second      Field
	Millisecond Field
}

// NewFileTime returns a spec with the date set and the time of day absent.
func NewFileTime(day, month, year int) FileTimeSpec {
	return FileTimeSpec{Day: Value(day), Month: Value(month), Year: Value(year)}
}

// WithDate returns a copy with day, month and year set.
func (s FileTimeSpec) WithDate(day, month, year int) FileTimeSpec {
	s.Day, s.Month, s.Year = Value(day), Value(month), Value(year)
	return s
}

// WithHour returns a copy with the hour set.
func (s FileTimeSpec) WithHour(h int) FileTimeSpec {
	s.Hour = Value(h)
	return s
}

// WithMinute returns a copy with the minute set.
func (s FileTimeSpec) WithMinute(m int) FileTimeSpec {
	s.Minute = Value(m)
	return s
}

// WithSecond returns a copy with the second set.
func (s FileTimeSpec) WithSecond(sec int) FileTimeSpec {
	s.Second = Value(sec)
	return s
}

// WithMillisecond returns a copy with the millisecond set.
func (s FileTimeSpec) WithMillisecond(ms int) FileTimeSpec {
	s.Millisecond = Value(ms)
	return s
}

func (s FileTimeSpec) String() string {
	return fmt.Sprintf("%s-%s-%s %s:%s:%s.%s",
		s.Year, s.Month, s.Day, s.Hour, s.Minute, s.Second, s.Millisecond)
}

// Components is a fully specified timestamp. Values are not normalized, so an
// out-of-range component survives until the native call rejects it.
type Components struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Resolve fills absent fields from now.
func (s FileTimeSpec) Resolve(now time.Time) Components {
	return Components{
		Year:        s.Year.Or(now.Year()),
		Month:       s.Month.Or(int(now.Month())),
		Day:         s.Day.Or(now.Day()),
		Hour:        s.Hour.Or(now.Hour()),
		Minute:      s.Minute.Or(now.Minute()),
		Second:      s.Second.Or(now.Second()),
		Millisecond: s.Millisecond.Or(now.Nanosecond() / int(time.Millisecond)),
	}
}

// FormatTouchTime renders spec in the YYYYMMDDhhmm.ss form accepted by
// touch -t, filling absent fields from now. Every component is zero padded;
// milliseconds are dropped since the format has no place for them.
//
//	FormatTouchTime(NewFileTime(13, 3, 2022).WithHour(2).WithMinute(46).WithSecond(46), now)
//	// "202203130246.46"
func FormatTouchTime(spec FileTimeSpec, now time.Time) string {
	c := spec.Resolve(now)
	return fmt.Sprintf("%04d%02d%02d%02d%02d.%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
}
