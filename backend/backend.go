// SPDX-License-Identifier: EPL-2.0

package backend

// BufferID identifies an uploaded PCM buffer inside a backend.
type BufferID uint32

// SourceID identifies a playback source inside a backend.
type SourceID uint32

// Vec3 is a point or direction in the game's coordinate space.
type Vec3 struct {
	X, Y, Z float32
}

// Orientation is the listener's forward and up vectors.
type Orientation struct {
	Forward Vec3
	Up      Vec3
}

// Backend is the device/context service the sound system drives. It owns the
// actual output path: buffer storage, per-source playback state, and the
// global listener. Implementations must tolerate being called with ids they
// never handed out (the sound system treats every backend failure as
// non-fatal).
type Backend interface {
	// Available reports whether the device and context are usable. The sound
	// system degrades every operation to a no-op when this is false.
	Available() bool

	// AllocateBuffer uploads interleaved 16-bit little-endian PCM.
	AllocateBuffer(pcm []byte, channels, sampleRate int) (BufferID, error)

	// AllocateSource creates a playback source bound to a buffer.
	AllocateSource(buf BufferID) (SourceID, error)

	// SetSourceSpatial updates a source's position, velocity, and whether its
	// coordinates are relative to the listener.
	SetSourceSpatial(src SourceID, pos, vel Vec3, relative bool)

	// SetSourceRolloff sets the distance attenuation factor for a source.
	SetSourceRolloff(src SourceID, rolloff float32)

	// SetSourceLooping marks a source to restart from the beginning when its
	// buffer runs out.
	SetSourceLooping(src SourceID, looping bool)

	Play(src SourceID)
	Stop(src SourceID)
	IsPlaying(src SourceID) bool

	// SetListener updates the global listener state. gain scales all output.
	SetListener(pos, vel Vec3, orient Orientation, gain float32)

	// Close releases the device and context. Safe to call more than once.
	Close() error
}
