// SPDX-License-Identifier: EPL-2.0

package gamesnd

import "github.com/ik5/gamesnd/backend"

// defaultRolloff controls how quickly positional sounds fade with distance.
const defaultRolloff = 0.7

// SoundSource is a named positional sound. A source whose asset failed to
// load carries no buffer; every method on such a source is a no-op, so a
// game can drive its sound handles without checking load results.
type SoundSource struct {
	b        backend.Backend
	id       backend.SourceID
	buf      *SoundBuffer
	pos      backend.Vec3
	vel      backend.Vec3
	relative bool
}

func newSoundSource(b backend.Backend, buf *SoundBuffer) *SoundSource {
	src := &SoundSource{b: b, buf: buf}
	if buf == nil {
		return src
	}

	id, err := b.AllocateSource(buf.id)
	if err != nil {
		src.buf = nil
		return src
	}

	src.id = id
	b.SetSourceSpatial(id, src.pos, src.vel, false)
	b.SetSourceRolloff(id, defaultRolloff)
	return src
}

// Buffer returns the decoded asset behind the source, or nil when the
// source is inert.
func (s *SoundSource) Buffer() *SoundBuffer { return s.buf }

func (s *SoundSource) Play() {
	if s.buf == nil {
		return
	}
	s.b.Play(s.id)
}

func (s *SoundSource) Stop() {
	if s.buf == nil {
		return
	}
	s.b.Stop(s.id)
}

func (s *SoundSource) IsPlaying() bool {
	if s.buf == nil {
		return false
	}
	return s.b.IsPlaying(s.id)
}

func (s *SoundSource) SetPosition(pos backend.Vec3) {
	if s.buf == nil {
		return
	}
	s.pos = pos
	s.b.SetSourceSpatial(s.id, s.pos, s.vel, s.relative)
}

func (s *SoundSource) SetVelocity(vel backend.Vec3) {
	if s.buf == nil {
		return
	}
	s.vel = vel
	s.b.SetSourceSpatial(s.id, s.pos, s.vel, s.relative)
}

// SetRelative makes the source follow the listener instead of sitting at a
// world position. UI sounds are usually relative.
func (s *SoundSource) SetRelative(relative bool) {
	if s.buf == nil {
		return
	}
	s.relative = relative
	s.b.SetSourceSpatial(s.id, s.pos, s.vel, s.relative)
}

func (s *SoundSource) SetLooping(looping bool) {
	if s.buf == nil {
		return
	}
	s.b.SetSourceLooping(s.id, looping)
}

// CreateSource builds a positional source for asset and registers it under
// name. Creating a name twice is a caller bug: the call is logged and the
// existing source is returned untouched. When the asset cannot be loaded
// the name is still registered, bound to an inert source.
func (s *System) CreateSource(name, asset string) *SoundSource {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.sources[name]; ok {
		s.log.Warn("attempted to create sound source twice", "name", name)
		return existing
	}

	buf, ok := s.resolveBufferLocked(asset)
	if !ok {
		s.log.Info("sound source created without audio", "name", name, "asset", asset)
	}

	src := newSoundSource(s.backend, buf)
	s.sources[name] = src
	return src
}

// GetSource returns the source registered under name. A name that was never
// created gets an inert source registered on the spot, so the returned
// handle is always usable and later lookups see the same instance.
func (s *System) GetSource(name string) *SoundSource {
	s.mu.Lock()
	defer s.mu.Unlock()

	if src, ok := s.sources[name]; ok {
		return src
	}

	s.log.Warn("sound source requested before creation, registering an empty one", "name", name)
	src := newSoundSource(s.backend, nil)
	s.sources[name] = src
	return src
}
