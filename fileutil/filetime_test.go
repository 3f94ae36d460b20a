// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldZeroValueIsAbsent(t *testing.T) {
	var f Field
	_, ok := f.Get()
	assert.False(t, ok)
	assert.False(t, f.IsSet())
	assert.Equal(t, 7, f.Or(7))

	v, ok := Value(0).Get()
	assert.True(t, ok, "zero is a valid value, not absence")
	assert.Equal(t, 0, v)
}

func TestNewFileTimeLeavesTimeOfDayAbsent(t *testing.T) {
	spec := NewFileTime(25, 12, 2021)

	assert.True(t, spec.Day.IsSet())
	assert.True(t, spec.Month.IsSet())
	assert.True(t, spec.Year.IsSet())
	assert.False(t, spec.Hour.IsSet())
	assert.False(t, spec.Minute.IsSet())
	assert.False(t, spec.Second.IsSet())
	assert.False(t, spec.Millisecond.IsSet())
}

func TestFormatTouchTime(t *testing.T) {
	now := time.Date(2030, 11, 28, 23, 59, 58, 0, time.UTC)

	tests := []struct {
		name string
		spec FileTimeSpec
		want string
	}{
		{
			name: "fully specified",
			spec: NewFileTime(13, 3, 2022).WithHour(2).WithMinute(46).WithSecond(46).WithMillisecond(0),
			want: "202203130246.46",
		},
		{
			name: "absent time of day uses now",
			spec: NewFileTime(1, 2, 2003),
			want: "200302012359.58",
		},
		{
			name: "everything absent",
			spec: FileTimeSpec{},
			want: "203011282359.58",
		},
		{
			name: "zero padding",
			spec: NewFileTime(5, 6, 7).WithHour(0).WithMinute(1).WithSecond(9),
			want: "000706050001.09",
		},
		{
			name: "milliseconds dropped",
			spec: NewFileTime(13, 3, 2022).WithHour(2).WithMinute(46).WithSecond(46).WithMillisecond(999),
			want: "202203130246.46",
		},
		{
			name: "out of range passed through",
			spec: NewFileTime(32, 13, 2022).WithHour(25).WithMinute(0).WithSecond(0),
			want: "202213322500.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTouchTime(tt.spec, now))
		})
	}
}

func TestResolveOverlaysNow(t *testing.T) {
	now := time.Date(2024, 2, 29, 13, 14, 15, 16*int(time.Millisecond), time.UTC)

	got := FileTimeSpec{Year: Value(1999), Second: Value(0)}.Resolve(now)

	assert.Equal(t, Components{
		Year:        1999,
		Month:       2,
		Day:         29,
		Hour:        13,
		Minute:      14,
		Second:      0,
		Millisecond: 16,
	}, got)
}

func TestFileTimeSpecString(t *testing.T) {
	assert.Equal(t, "2022-3-13 -:-:-.-", NewFileTime(13, 3, 2022).String())
}
