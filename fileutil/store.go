// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"time"

	"github.com/jongio/sysext/cmdutil"
	"github.com/jongio/sysext/logutil"
	"github.com/jongio/sysext/metrics"
	"github.com/jongio/sysext/security"
)

const component = "fileutil"

// AttributeStore sets and queries attribute flags on a path.
type AttributeStore interface {
	// SetAttributes applies attrs to path. An empty set is a no-op that
	// succeeds.
	SetAttributes(path string, attrs Attributes) error
	// HasAttribute reports whether path carries attr. It is false both when
	// the attribute is absent and when the query fails.
	HasAttribute(path string, attr Attributes) bool
	// GetAttributes lists the attributes present on path in declared order.
	GetAttributes(path string) ([]Attributes, error)
}

// TimeStore writes file timestamps from a FileTimeSpec.
type TimeStore interface {
	SetCreationTime(path string, spec FileTimeSpec) error
	SetAccessTime(path string, spec FileTimeSpec) error
	SetModificationTime(path string, spec FileTimeSpec) error
}

// timeKind selects which timestamp a write targets.
type timeKind int

const (
	creationTime timeKind = iota
	accessTime
	modificationTime
)

func (k timeKind) String() string {
	switch k {
	case creationTime:
		return "creation"
	case accessTime:
		return "access"
	default:
		return "modification"
	}
}

// Store is the AttributeStore and TimeStore for the host platform. The
// native calls live in the per-OS files of this package.
//
// Store holds no per-path state and does no locking; concurrent writes to the
// same path must be serialized by the caller.
type Store struct {
	clock func() time.Time
	touch *cmdutil.Runner
}

var (
	_ AttributeStore = (*Store)(nil)
	_ TimeStore      = (*Store)(nil)
)

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used to fill absent FileTimeSpec fields.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithTouchRunner sets the runner used for timestamp writes on platforms
// that delegate them to touch(1).
func WithTouchRunner(r *cmdutil.Runner) Option {
	return func(s *Store) {
		if r != nil {
			s.touch = r
		}
	}
}

// New creates a Store for the host platform.
func New(opts ...Option) *Store {
	s := &Store{
		clock: time.Now,
		touch: cmdutil.NewRunner("touch"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetAttributes applies attrs to path.
//
// On Windows the native attribute mask is replaced by attrs. Normal is only
// meaningful alone and is dropped when combined with other flags.
//
// On POSIX systems flags are added: ReadOnly clears every write permission
// bit and Hidden renames the file to its dot-prefixed name in the same
// directory. The rename is destructive; after it the old path no longer
// resolves and PathAfter reports the new one. Normal is a no-op.
func (s *Store) SetAttributes(path string, attrs Attributes) (err error) {
	defer func(start time.Time) { metrics.Observe(component, "set_attributes", start, err) }(time.Now())

	if err := security.ValidateNativePath(path); err != nil {
		return err
	}
	if attrs.IsEmpty() {
		return nil
	}

	log := logutil.NewLogger(component).WithOperation("set_attributes").WithPath(path)
	log.Debug("applying attributes", "attrs", attrs)

	if err := s.setAttributes(path, attrs); err != nil {
		log.Debug("native call failed", "error", err)
		return err
	}
	return nil
}

// HasAttribute reports whether path carries every flag in attr.
func (s *Store) HasAttribute(path string, attr Attributes) (ok bool) {
	defer func(start time.Time) { metrics.ObserveBool(component, "has_attribute", start, ok) }(time.Now())

	if security.ValidateNativePath(path) != nil {
		return false
	}

	present, err := s.statAttributes(path)
	if err != nil {
		logutil.NewLogger(component).WithOperation("has_attribute").WithPath(path).
			Debug("attribute query failed", "error", err)
		return false
	}
	return present.Has(attr)
}

// GetAttributes lists the attributes present on path in declared order. It
// fails only when the metadata query itself fails; a path with no attributes
// yields an empty slice.
func (s *Store) GetAttributes(path string) (list []Attributes, err error) {
	defer func(start time.Time) { metrics.Observe(component, "get_attributes", start, err) }(time.Now())

	if err := security.ValidateNativePath(path); err != nil {
		return nil, err
	}

	present, err := s.statAttributes(path)
	if err != nil {
		return nil, err
	}
	return present.List(), nil
}

// SetCreationTime sets the creation timestamp of path. Platforms without a
// creation time return ErrUnsupported.
func (s *Store) SetCreationTime(path string, spec FileTimeSpec) error {
	return s.setTimeObserved(path, creationTime, spec)
}

// SetAccessTime sets the last-access timestamp of path.
func (s *Store) SetAccessTime(path string, spec FileTimeSpec) error {
	return s.setTimeObserved(path, accessTime, spec)
}

// SetModificationTime sets the last-write timestamp of path.
func (s *Store) SetModificationTime(path string, spec FileTimeSpec) error {
	return s.setTimeObserved(path, modificationTime, spec)
}

func (s *Store) setTimeObserved(path string, kind timeKind, spec FileTimeSpec) (err error) {
	op := "set_" + kind.String() + "_time"
	defer func(start time.Time) { metrics.Observe(component, op, start, err) }(time.Now())

	log := logutil.NewLogger(component).WithOperation(op).WithPath(path)
	log.Debug("applying file time", "spec", spec.String())

	if err := s.setTime(path, kind, spec); err != nil {
		log.Debug("native call failed", "error", err)
		return err
	}
	return nil
}

func (s *Store) now() time.Time {
	return s.clock()
}
