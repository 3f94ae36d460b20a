// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package metrics

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jongio/sysext/security"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ResultSuccess},
		{"not exist", fmt.Errorf("stat: %w", fs.ErrNotExist), ResultNotFound},
		{"permission", &fs.PathError{Op: "chmod", Path: "x", Err: fs.ErrPermission}, ResultPermissionDenied},
		{"unsupported", fmt.Errorf("creation time: %w", errors.ErrUnsupported), ResultUnsupported},
		{"invalid path", fmt.Errorf("%w: NUL", security.ErrInvalidPath), ResultInvalidInput},
		{"invalid name", security.ErrInvalidName, ResultInvalidInput},
		{"other", errors.New("boom"), ResultError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Result(tt.err))
		})
	}
}

func TestObserveCountsByResult(t *testing.T) {
	before := testutil.ToFloat64(operationTotal.WithLabelValues("test", "observe", ResultNotFound))

	Observe("test", "observe", time.Now(), fs.ErrNotExist)
	Observe("test", "observe", time.Now(), fs.ErrNotExist)

	after := testutil.ToFloat64(operationTotal.WithLabelValues("test", "observe", ResultNotFound))
	assert.Equal(t, before+2, after)
}

func TestObserveBool(t *testing.T) {
	before := testutil.ToFloat64(operationTotal.WithLabelValues("test", "bool", ResultError))
	ObserveBool("test", "bool", time.Now(), false)
	ObserveBool("test", "bool", time.Now(), true)
	assert.Equal(t, before+1, testutil.ToFloat64(operationTotal.WithLabelValues("test", "bool", ResultError)))
}

func TestAddProcessesScanned(t *testing.T) {
	before := testutil.ToFloat64(processesScanned.WithLabelValues("test"))
	AddProcessesScanned("test", 3)
	AddProcessesScanned("test", 0)
	assert.Equal(t, before+3, testutil.ToFloat64(processesScanned.WithLabelValues("test")))
}

func TestCreateMetricsServer(t *testing.T) {
	srv := CreateMetricsServer(9464)
	require.Equal(t, ":9464", srv.Addr)

	Observe("test", "scrape", time.Now(), nil)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "sysext_operation_total"))
}
