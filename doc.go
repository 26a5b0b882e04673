// SPDX-License-Identifier: EPL-2.0

// Package gamesnd manages the audio resources of a game: it decodes sound
// assets from a directory, caches them as backend buffers, and hands out
// named positional sources and ambient loop slots.
//
// The package is built to degrade instead of fail. When the audio backend
// is unavailable, an asset is missing, or decoding fails, the returned
// handles are inert no-ops and the game keeps running silently. Callers
// therefore never need to branch on audio errors:
//
//	snd := gamesnd.New(dev)
//	snd.Init("assets/sounds")
//
//	snd.CreateSource("door.front", "door_creak")
//	snd.GetSource("door.front").Play()
//
//	snd.SetAmbient("weather", "rain_loop", true)
//
// Backends implement the backend.Backend interface. backend/otodev plays
// through the platform audio device; backend.Null is an always-silent
// stand-in for servers and tests.
package gamesnd
