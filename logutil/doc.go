// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides structured logging on top of log/slog.
//
// The metadata stores and process directories log every native call at
// debug level through component loggers:
//
//	log := logutil.NewLogger("fileutil").WithOperation("set_attributes").WithPath(p)
//	log.Debug("native call", "attrs", attrs)
//
// Debug output is enabled with SetupLogger(true, ...) or SYSEXT_DEBUG=true.
// Passing structured=true switches the handler to JSON.
package logutil
