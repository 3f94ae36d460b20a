// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security holds the input checks shared by the metadata and process
// packages.
//
// Malformed input is a hard failure: a path with an embedded NUL byte would be
// cut short by a byte-string native API and operate on a different file, so
// ValidateNativePath refuses it with ErrInvalidPath instead.
//
//	if err := security.ValidateNativePath(p); err != nil {
//	    return err // errors.Is(err, security.ErrInvalidPath)
//	}
package security
