// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

var defaultStore = New()

// SetAttributes applies attrs to path using the default store.
func SetAttributes(path string, attrs Attributes) error {
	return defaultStore.SetAttributes(path, attrs)
}

// SetAttribute applies attrs to path and reports success. Use SetAttributes
// when the cause of a failure matters.
func SetAttribute(path string, attrs Attributes) bool {
	return defaultStore.SetAttributes(path, attrs) == nil
}

// HasAttribute reports whether path carries attr. A missing path is false.
func HasAttribute(path string, attr Attributes) bool {
	return defaultStore.HasAttribute(path, attr)
}

// GetAttributes lists the attributes present on path in declared order.
func GetAttributes(path string) ([]Attributes, error) {
	return defaultStore.GetAttributes(path)
}

// SetCreationTime sets the creation timestamp of path.
func SetCreationTime(path string, spec FileTimeSpec) error {
	return defaultStore.SetCreationTime(path, spec)
}

// SetAccessTime sets the last-access timestamp of path.
func SetAccessTime(path string, spec FileTimeSpec) error {
	return defaultStore.SetAccessTime(path, spec)
}

// SetModificationTime sets the last-write timestamp of path.
func SetModificationTime(path string, spec FileTimeSpec) error {
	return defaultStore.SetModificationTime(path, spec)
}

// SetCreationDate sets the creation timestamp and reports success. It is
// always false where creation time is unsupported; SetCreationTime tells
// that case apart with ErrUnsupported.
func SetCreationDate(path string, spec FileTimeSpec) bool {
	return SetCreationTime(path, spec) == nil
}

// SetAccessedDate sets the last-access timestamp and reports success.
func SetAccessedDate(path string, spec FileTimeSpec) bool {
	return SetAccessTime(path, spec) == nil
}

// SetChangedDate sets the last-write timestamp and reports success.
func SetChangedDate(path string, spec FileTimeSpec) bool {
	return SetModificationTime(path, spec) == nil
}
