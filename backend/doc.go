// SPDX-License-Identifier: EPL-2.0

// Package backend defines the device abstraction the sound system plays
// through: buffer upload, named playback sources, and the global listener.
//
// Two implementations ship with this module:
//   - backend.Null, an always-unavailable no-op for headless hosts
//   - otodev.Device, a real output path over github.com/ebitengine/oto/v3
//
// The sound system never fails because of a backend. When Available reports
// false, every public operation becomes a no-op or returns an inert handle,
// so game code can run unchanged with or without audio hardware.
package backend
