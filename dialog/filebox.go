// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package dialog

import (
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/jongio/sysext/logutil"
	"github.com/jongio/sysext/security"
)

// ErrNoSelection is returned when the user closes a file picker without
// choosing a file.
var ErrNoSelection = errors.New("no file selected")

// Filter restricts a file picker to names matching Pattern. Pattern holds one
// or more shell patterns separated by semicolons, for example "*.jpg;*.jpeg".
type Filter struct {
	Label   string
	Pattern string
}

// AllFiles is the filter used when a FileBox has none.
var AllFiles = Filter{Label: "All", Pattern: "*.*"}

// Matches reports whether the base name of name matches any of the filter's
// patterns. "*.*" and "*" match every name.
func (f Filter) Matches(name string) bool {
	base := filepath.Base(name)
	for _, p := range strings.Split(f.Pattern, ";") {
		p = strings.TrimSpace(p)
		if p == "*" || p == "*.*" {
			return true
		}
		if ok, err := path.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}

// FileBox describes an open or save file picker.
type FileBox struct {
	filters   []Filter
	directory string
}

// NewFileBox creates a picker with no filters and no starting directory.
func NewFileBox() *FileBox {
	return &FileBox{}
}

// AddFilter appends a (label, pattern) filter.
func (b *FileBox) AddFilter(label, pattern string) *FileBox {
	b.filters = append(b.filters, Filter{Label: label, Pattern: pattern})
	return b
}

// SetDirectory sets the directory the picker starts in.
func (b *FileBox) SetDirectory(dir string) *FileBox {
	b.directory = dir
	return b
}

// Filters returns the filters a renderer should offer. A box without filters
// offers AllFiles.
func (b *FileBox) Filters() []Filter {
	if len(b.filters) == 0 {
		return []Filter{AllFiles}
	}
	return append([]Filter(nil), b.filters...)
}

// Directory returns the starting directory, if one was set.
func (b *FileBox) Directory() (string, bool) {
	return b.directory, b.directory != ""
}

// Accepts reports whether name passes at least one filter.
func (b *FileBox) Accepts(name string) bool {
	for _, f := range b.Filters() {
		if f.Matches(name) {
			return true
		}
	}
	return false
}

func (b *FileBox) validate() error {
	for _, f := range b.filters {
		if strings.TrimSpace(f.Pattern) == "" {
			return fmt.Errorf("%w: filter %q has no pattern", ErrInvalidDescriptor, f.Label)
		}
	}
	if b.directory != "" {
		if err := security.ValidateNativePath(b.directory); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
		}
	}
	return nil
}

// FileRenderer draws file pickers. An empty path with a nil error means the
// user made no selection.
type FileRenderer interface {
	OpenFile(ctx context.Context, box *FileBox) (string, error)
	SaveFile(ctx context.Context, box *FileBox, suggestedName string) (string, error)
}

// Open asks r for an existing file to open.
func (b *FileBox) Open(ctx context.Context, r FileRenderer) (string, error) {
	if err := b.validate(); err != nil {
		return "", err
	}
	selected, err := r.OpenFile(ctx, b)
	return b.selection("open_file", selected, err)
}

// Save asks r for a destination, pre-filled with suggestedName.
func (b *FileBox) Save(ctx context.Context, r FileRenderer, suggestedName string) (string, error) {
	if err := b.validate(); err != nil {
		return "", err
	}
	selected, err := r.SaveFile(ctx, b, suggestedName)
	return b.selection("save_file", selected, err)
}

func (b *FileBox) selection(op, selected string, err error) (string, error) {
	log := logutil.NewLogger(component).WithOperation(op)
	switch {
	case errors.Is(err, ErrNoSelection):
		return "", err
	case err != nil:
		log.Debug("renderer failed", "error", err)
		return "", fmt.Errorf("%s: %w", strings.ReplaceAll(op, "_", " "), err)
	case selected == "":
		return "", ErrNoSelection
	}
	log.Debug("file selected", "path", selected)
	return selected, nil
}
