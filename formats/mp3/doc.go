// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio via github.com/hajimehoshi/go-mp3.
//
// MP3 is one of the fallback containers the sound system probes when no Ogg
// Vorbis or WAV file exists for an asset name. Output is always stereo at
// the stream's native sample rate.
package mp3
