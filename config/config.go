// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jongio/sysext/cmdutil"
	"github.com/jongio/sysext/fileutil"
	"github.com/jongio/sysext/logutil"
	"github.com/jongio/sysext/metrics"
	"github.com/jongio/sysext/notify"
	"github.com/jongio/sysext/procutil"
	"github.com/jongio/sysext/security"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLogFormat = "SYSEXT_LOG_FORMAT"
	EnvTouchPath = "SYSEXT_TOUCH_PATH"
	EnvProcRoot  = "SYSEXT_PROC_ROOT"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds every tunable setting.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Touch   TouchConfig   `yaml:"touch"`
	Process ProcessConfig `yaml:"process"`
	Notify  NotifyConfig  `yaml:"notify"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TouchConfig configures the utility that sets POSIX timestamps.
type TouchConfig struct {
	Path                   string        `yaml:"path"`
	Timeout                time.Duration `yaml:"timeout"`
	CircuitBreakerFailures uint32        `yaml:"circuitBreakerFailures"`
	CircuitBreakerTimeout  time.Duration `yaml:"circuitBreakerTimeout"`
}

// ProcessConfig configures process lookups.
type ProcessConfig struct {
	ProcRoot     string        `yaml:"procRoot"`
	PollInterval time.Duration `yaml:"pollInterval"`
}

// NotifyConfig configures desktop notifications.
type NotifyConfig struct {
	AppName string        `yaml:"appName"`
	AppID   string        `yaml:"appID"`
	Timeout time.Duration `yaml:"timeout"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Default returns the built-in configuration.
func Default() *Config {
	n := notify.DefaultConfig()
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Touch: TouchConfig{
			Path:                   "touch",
			Timeout:                cmdutil.DefaultTimeout,
			CircuitBreakerFailures: 3,
			CircuitBreakerTimeout:  30 * time.Second,
		},
		Process: ProcessConfig{
			ProcRoot:     procutil.DefaultProcRoot,
			PollInterval: procutil.DefaultPollInterval,
		},
		Notify: NotifyConfig{
			AppName: n.AppName,
			AppID:   n.AppID,
			Timeout: n.Timeout,
		},
		Metrics: MetricsConfig{Port: 9090},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := security.ValidateNativePath(path); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}

		// #nosec G304 -- path is chosen by the caller
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			logutil.Debug("config file not found, using defaults", "path", path)
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	if getenv(logutil.EnvDebug) == "true" {
		c.Log.Level = "debug"
	}
	if v := getenv(EnvLogFormat); v != "" {
		c.Log.Format = v
	}
	if v := getenv(EnvTouchPath); v != "" {
		c.Touch.Path = v
	}
	if v := getenv(EnvProcRoot); v != "" {
		c.Process.ProcRoot = v
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if strings.TrimSpace(c.Touch.Path) == "" {
		return fmt.Errorf("%w: touch path is empty", ErrInvalidConfig)
	}
	if c.Touch.Timeout < 0 || c.Touch.CircuitBreakerTimeout < 0 || c.Process.PollInterval < 0 || c.Notify.Timeout < 0 {
		return fmt.Errorf("%w: durations must not be negative", ErrInvalidConfig)
	}
	if err := security.ValidateNativePath(c.Process.ProcRoot); err != nil {
		return fmt.Errorf("%w: proc root: %w", ErrInvalidConfig, err)
	}
	if c.Metrics.Enabled && (c.Metrics.Port <= 0 || c.Metrics.Port > 65535) {
		return fmt.Errorf("%w: metrics port %d", ErrInvalidConfig, c.Metrics.Port)
	}
	return nil
}

// Apply configures the global logger.
func (c *Config) Apply() {
	logutil.SetupLogger(false, strings.EqualFold(c.Log.Format, "json"))
	logutil.SetLevel(logutil.ParseLevel(c.Log.Level))
}

// TouchRunner builds the runner for the touch utility.
func (c *Config) TouchRunner() *cmdutil.Runner {
	return cmdutil.NewRunner(c.Touch.Path,
		cmdutil.WithTimeout(c.Touch.Timeout),
		cmdutil.WithBreaker(c.Touch.CircuitBreakerFailures, c.Touch.CircuitBreakerTimeout),
	)
}

// FileStore builds a metadata store that uses the configured touch runner.
func (c *Config) FileStore() *fileutil.Store {
	return fileutil.New(fileutil.WithTouchRunner(c.TouchRunner()))
}

// ProcessDirectory builds a process directory reading the configured proc
// root and waiting with the configured poll interval.
func (c *Config) ProcessDirectory() *procutil.Directory {
	return procutil.New(
		procutil.WithProcRoot(c.Process.ProcRoot),
		procutil.WithPollInterval(c.Process.PollInterval),
	)
}

// Notifier builds a desktop notifier.
func (c *Config) Notifier() (notify.Notifier, error) {
	return notify.New(notify.Config{
		AppName: c.Notify.AppName,
		AppID:   c.Notify.AppID,
		Timeout: c.Notify.Timeout,
	})
}

// MetricsServer returns the /metrics server, or nil when metrics are off.
func (c *Config) MetricsServer() *http.Server {
	if !c.Metrics.Enabled {
		return nil
	}
	return metrics.CreateMetricsServer(c.Metrics.Port)
}
