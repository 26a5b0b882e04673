// SPDX-License-Identifier: EPL-2.0

package gamesnd

import "errors"

var (
	// ErrNotDirectory is returned by Init when the sound path exists but is
	// not a directory.
	ErrNotDirectory = errors.New("not a directory")
)
