// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via github.com/jfreymuth/oggvorbis.
//
// Ogg Vorbis is the preferred container for game sound assets: it is probed
// first when the sound system resolves an asset name to a file.
//
//	dec := vorbis.Decoder{}
//	f, _ := os.Open("step.ogg")
//	src, err := dec.Decode(f)
//
// The returned audio.Source yields interleaved float32 samples in [-1, 1]
// at the stream's native rate and channel count.
package vorbis
