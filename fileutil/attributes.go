// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"fmt"
	"strings"
)

// Attributes is a set of file attribute flags. Flags combine with |.
//
// The numeric values match the Windows FILE_ATTRIBUTE_* bits so the set can be
// handed to the native call unchanged on that platform.
type Attributes uint32

const (
	// ReadOnly marks a file that cannot be written.
	ReadOnly Attributes = 0x1
	// Hidden marks a file excluded from ordinary listings. On POSIX systems
	// this is the leading-dot naming convention.
	Hidden Attributes = 0x2
	// Normal marks a file with no other attributes. POSIX has no equivalent.
	Normal Attributes = 0x80
)

// known is every flag this package understands.
const known = Normal | Hidden | ReadOnly

// AllAttributes lists every attribute in declared order. GetAttributes
// reports attributes in this order.
var AllAttributes = []Attributes{Normal, Hidden, ReadOnly}

var attributeNames = map[Attributes]string{
	Normal:   "Normal",
	Hidden:   "Hidden",
	ReadOnly: "ReadOnly",
}

// Has reports whether every flag in attr is present in a. An empty attr is
// never reported as present.
func (a Attributes) Has(attr Attributes) bool {
	return attr != 0 && a&attr == attr
}

// IsEmpty reports whether no flags are set.
func (a Attributes) IsEmpty() bool {
	return a == 0
}

// List returns the known flags present in a, in declared order.
func (a Attributes) List() []Attributes {
	out := make([]Attributes, 0, len(AllAttributes))
	for _, attr := range AllAttributes {
		if a.Has(attr) {
			out = append(out, attr)
		}
	}
	return out
}

// String renders the set as "Hidden|ReadOnly". Unknown bits are appended in
// hex; the empty set is "None".
func (a Attributes) String() string {
	if a == 0 {
		return "None"
	}

	parts := make([]string, 0, len(AllAttributes)+1)
	for _, attr := range a.List() {
		parts = append(parts, attributeNames[attr])
	}
	if rest := a &^ known; rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseAttributes parses a "|" or "," separated list of attribute names such
// as "hidden|readonly". Names are case-insensitive and "read-only" and
// "read_only" are accepted. An empty string yields the empty set.
func ParseAttributes(s string) (Attributes, error) {
	var out Attributes
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' })
	for _, field := range fields {
		name := strings.ToLower(strings.TrimSpace(field))
		name = strings.NewReplacer("-", "", "_", "").Replace(name)
		switch name {
		case "", "none":
		case "normal":
			out |= Normal
		case "hidden":
			out |= Hidden
		case "readonly":
			out |= ReadOnly
		default:
			return 0, fmt.Errorf("unknown attribute %q", strings.TrimSpace(field))
		}
	}
	return out, nil
}
