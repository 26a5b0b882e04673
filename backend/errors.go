// SPDX-License-Identifier: EPL-2.0

package backend

import "errors"

var (
	// ErrUnavailable means the backend has no usable device or context.
	ErrUnavailable = errors.New("audio backend unavailable")

	// ErrUnknownBuffer means a source was requested for a buffer id the
	// backend never allocated.
	ErrUnknownBuffer = errors.New("unknown buffer id")
)
