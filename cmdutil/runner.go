// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmdutil

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jongio/sysext/logutil"
	"github.com/sony/gobreaker"
)

// ErrBreakerOpen is returned while the runner refuses calls after repeated
// failures to launch the utility.
var ErrBreakerOpen = errors.New("utility temporarily disabled after repeated failures")

// Runner invokes a single external utility. A circuit breaker trips when the
// utility cannot be launched at all (missing binary), so subsequent metadata
// writes fail fast instead of forking on every call. Ordinary non-zero exits
// (for example a permission error reported by the utility) do not count
// against the breaker.
type Runner struct {
	name    string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// RunnerOption configures a Runner.
type RunnerOption func(*runnerConfig)

type runnerConfig struct {
	timeout         time.Duration
	breakerFailures uint32
	breakerTimeout  time.Duration
}

// WithTimeout sets the per-invocation timeout.
func WithTimeout(d time.Duration) RunnerOption {
	return func(c *runnerConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithBreaker sets how many consecutive launch failures open the breaker and
// how long it stays open. A zero failure count disables tripping.
func WithBreaker(failures uint32, openFor time.Duration) RunnerOption {
	return func(c *runnerConfig) {
		c.breakerFailures = failures
		if openFor > 0 {
			c.breakerTimeout = openFor
		}
	}
}

// NewRunner creates a runner for the named utility.
func NewRunner(name string, opts ...RunnerOption) *Runner {
	cfg := runnerConfig{
		timeout:         DefaultTimeout,
		breakerFailures: 3,
		breakerTimeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	failures := cfg.breakerFailures
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return failures > 0 && counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, ErrCommandNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logutil.NewLogger("cmdutil").Warn("utility breaker state changed",
				"utility", name, "from", from.String(), "to", to.String())
		},
	}

	return &Runner{
		name:    name,
		timeout: cfg.timeout,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Name returns the utility this runner invokes.
func (r *Runner) Name() string {
	return r.name
}

// State returns the breaker state.
func (r *Runner) State() gobreaker.State {
	return r.breaker.State()
}

// Run invokes the utility with args and returns its combined output.
func (r *Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	logutil.NewLogger("cmdutil").Debug("running utility", "utility", r.name, "args", args)

	out, err := r.breaker.Execute(func() (interface{}, error) {
		path := LookupTool(r.name)
		if path == "" {
			return nil, fmt.Errorf("%w: %s", ErrCommandNotFound, r.name)
		}
		return RunCommandWithOutput(ctx, path, args, "")
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s", ErrBreakerOpen, r.name)
		}
		if b, ok := out.([]byte); ok {
			return b, err
		}
		return nil, err
	}

	return out.([]byte), nil
}
