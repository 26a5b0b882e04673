// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes PCM WAV files via github.com/go-audio/wav.
//
// WAV is the raw fallback container for game sound assets: it is probed when
// no Ogg Vorbis file exists for an asset name. Only 16-bit PCM is accepted.
//
//	dec := wav.Decoder{}
//	f, _ := os.Open("step.wav")
//	src, err := dec.Decode(f)
//
// WritePCM16 is the matching writer, mainly for tooling and test fixtures.
package wav
