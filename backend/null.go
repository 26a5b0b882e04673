// SPDX-License-Identifier: EPL-2.0

package backend

// Null is a backend for hosts without audio output: headless servers, CI,
// machines with no device. Every operation is a no-op and Available reports
// false, which makes the sound system degrade silently.
type Null struct{}

func (Null) Available() bool { return false }

func (Null) AllocateBuffer(pcm []byte, channels, sampleRate int) (BufferID, error) {
	return 0, ErrUnavailable
}

func (Null) AllocateSource(buf BufferID) (SourceID, error) {
	return 0, ErrUnavailable
}

func (Null) SetSourceSpatial(src SourceID, pos, vel Vec3, relative bool) {}
func (Null) SetSourceRolloff(src SourceID, rolloff float32)              {}
func (Null) SetSourceLooping(src SourceID, looping bool)                 {}
func (Null) Play(src SourceID)                                           {}
func (Null) Stop(src SourceID)                                           {}
func (Null) IsPlaying(src SourceID) bool                                 { return false }

func (Null) SetListener(pos, vel Vec3, orient Orientation, gain float32) {}

func (Null) Close() error { return nil }
