// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-stream primitives underneath the sound
// system: the Source interface produced by the container decoders, a decoder
// Registry keyed by file extension, a cubic-interpolation Resampler, a
// MonoMixer, and helpers for collecting a stream into 16-bit PCM bytes.
//
// # Source Interface
//
// All decoders and processors implement Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved float32 in [-1.0, 1.0]. ReadSamples returns io.EOF
// when the stream is finished; other errors indicate a broken source.
//
// # Decoder Registry
//
// The sound system probes asset files by extension and picks the decoder from
// a Registry:
//
//	reg := audio.NewRegistry()
//	reg.Register("ogg", vorbis.Decoder{})
//	reg.Register("wav", wav.Decoder{})
//
// # Collecting PCM
//
// Game sound effects are short, so buffers are decoded fully up front:
//
//	src, _ := dec.Decode(file)
//	pcm, channels, rate, err := audio.CollectPCM16(src, 4096)
//
// The resulting bytes can be handed to a backend for upload, or wrapped back
// into a Source with NewPCM16Source for further processing (the oto backend
// resamples stored buffers to the device rate this way).
package audio
