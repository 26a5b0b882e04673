// SPDX-License-Identifier: EPL-2.0

package otodev

import "errors"

var (
	ErrBadFormat = errors.New("invalid PCM format")
)
