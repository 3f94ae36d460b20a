// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package metrics records Prometheus metrics for metadata and process
// operations.
package metrics

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/jongio/sysext/security"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result labels.
const (
	ResultSuccess          = "success"
	ResultNotFound         = "not_found"
	ResultPermissionDenied = "permission_denied"
	ResultUnsupported      = "unsupported"
	ResultInvalidInput     = "invalid_input"
	ResultError            = "error"
)

var (
	operationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sysext_operation_duration_seconds",
			Help:    "Duration of metadata and process operations in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
		[]string{"component", "operation", "result"},
	)

	operationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysext_operation_total",
			Help: "Total number of metadata and process operations performed",
		},
		[]string{"component", "operation", "result"},
	)

	processesScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sysext_processes_scanned_total",
			Help: "Process entries examined during name lookups",
		},
		[]string{"platform"},
	)
)

// Observe records one operation. It is meant to be deferred:
//
//	defer func(start time.Time) { metrics.Observe("fileutil", "set_attributes", start, err) }(time.Now())
func Observe(component, operation string, start time.Time, err error) {
	labels := prometheus.Labels{
		"component": component,
		"operation": operation,
		"result":    Result(err),
	}
	operationDuration.With(labels).Observe(time.Since(start).Seconds())
	operationTotal.With(labels).Inc()
}

// ObserveBool records an operation whose only outcome is a boolean.
func ObserveBool(component, operation string, start time.Time, ok bool) {
	var err error
	if !ok {
		err = errFalse
	}
	Observe(component, operation, start, err)
}

var errFalse = errors.New("operation reported false")

// AddProcessesScanned counts process entries examined during one lookup.
func AddProcessesScanned(platform string, n int) {
	if n > 0 {
		processesScanned.WithLabelValues(platform).Add(float64(n))
	}
}

// Result maps an error onto a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, errors.ErrUnsupported):
		return ResultUnsupported
	case errors.Is(err, security.ErrInvalidPath), errors.Is(err, security.ErrInvalidName):
		return ResultInvalidInput
	case errors.Is(err, fs.ErrNotExist):
		return ResultNotFound
	case errors.Is(err, fs.ErrPermission):
		return ResultPermissionDenied
	default:
		return ResultError
	}
}

// CreateMetricsServer creates an HTTP server exposing /metrics.
func CreateMetricsServer(port int) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
