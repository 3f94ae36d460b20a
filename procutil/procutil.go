// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"time"

	"github.com/jongio/sysext/logutil"
	"github.com/jongio/sysext/metrics"
	"github.com/jongio/sysext/security"
)

const component = "procutil"

// ErrNotFound is returned when a full enumeration finds no matching process.
// It matches fs.ErrNotExist as well.
var ErrNotFound = fmt.Errorf("process not found: %w", fs.ErrNotExist)

// ProcessDirectory resolves process ids and checks liveness. Every call takes
// a fresh snapshot from the OS; nothing is cached between calls.
type ProcessDirectory interface {
	// FindProcessID returns the id of the first process matching name.
	FindProcessID(name string) (uint32, error)
	// IsProcessRunning reports whether pid denotes a live process right now.
	IsProcessRunning(pid uint32) bool
}

// Directory is the ProcessDirectory for the host platform.
//
// The match policy differs by platform and is kept that way on purpose:
// Windows compares name against the first whitespace-delimited token of each
// executable name exactly, while Linux and the other Unix systems look for
// name as a substring of each process's command line.
type Directory struct {
	procRoot     string
	pollInterval time.Duration
}

var _ ProcessDirectory = (*Directory)(nil)

// Option configures a Directory.
type Option func(*Directory)

// WithProcRoot sets the procfs mount point read on Linux. Other platforms
// ignore it.
func WithProcRoot(root string) Option {
	return func(d *Directory) {
		if root != "" {
			d.procRoot = root
		}
	}
}

// WithPollInterval sets how often WaitForExit checks liveness when the
// caller passes no interval.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Directory) {
		if interval > 0 {
			d.pollInterval = interval
		}
	}
}

// New creates a Directory for the host platform.
func New(opts ...Option) *Directory {
	d := &Directory{procRoot: DefaultProcRoot, pollInterval: DefaultPollInterval}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DefaultProcRoot is where Linux mounts procfs.
const DefaultProcRoot = "/proc"

// PollInterval returns the interval WaitForExit uses when given none.
func (d *Directory) PollInterval() time.Duration {
	return d.pollInterval
}

// FindProcessID enumerates every process and returns the id of the first
// match. It fails with ErrNotFound once the enumeration is exhausted.
func (d *Directory) FindProcessID(name string) (pid uint32, err error) {
	defer func(start time.Time) { metrics.Observe(component, "find_process_id", start, err) }(time.Now())

	if err := security.ValidateProcessName(name); err != nil {
		return 0, err
	}

	log := logutil.NewLogger(component).WithOperation("find_process_id").WithFields("name", name)

	pid, scanned, err := d.findProcessID(name)
	metrics.AddProcessesScanned(platform, scanned)
	if err != nil {
		log.Debug("lookup failed", "scanned", scanned, "error", err)
		if errors.Is(err, ErrNotFound) {
			return 0, fmt.Errorf("cannot find process with name %q: %w", name, err)
		}
		return 0, err
	}

	log.Debug("process found", "pid", pid, "scanned", scanned)
	return pid, nil
}

// IsProcessRunning reports whether pid is live at the moment of the call.
// The answer is a snapshot: the id may exit or be reused right after.
func (d *Directory) IsProcessRunning(pid uint32) (running bool) {
	defer func(start time.Time) { metrics.ObserveBool(component, "is_process_running", start, running) }(time.Now())

	if pid == 0 {
		return false
	}
	running = d.isRunning(pid)
	logutil.NewLogger(component).WithOperation("is_process_running").WithPID(pid).
		Debug("liveness probe", "running", running)
	return running
}

var defaultDirectory = New()

// FindProcessID looks name up with the default directory.
func FindProcessID(name string) (uint32, error) {
	return defaultDirectory.FindProcessID(name)
}

// IsProcessRunning checks if a process with the given PID is running.
// Non-positive and out-of-range PIDs are never running.
func IsProcessRunning(pid int) bool {
	if pid <= 0 || uint64(pid) > math.MaxUint32 {
		return false
	}
	return defaultDirectory.IsProcessRunning(uint32(pid))
}
