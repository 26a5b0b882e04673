// SPDX-License-Identifier: EPL-2.0

// Package otodev implements backend.Backend over github.com/ebitengine/oto/v3.
//
// The device context is opened once at a fixed 48kHz stereo format. Buffers
// in other formats are converted at upload through the audio package's
// Resampler and MonoMixer, so playback never resamples on the hot path.
//
// Spatialization is approximated as distance-based gain against the listener
// position; there is no panning or doppler. Sources marked relative bypass
// attenuation entirely (UI sounds, ambient loops).
//
// oto supports one context per process, so a host should create at most one
// Device.
package otodev
