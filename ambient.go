// SPDX-License-Identifier: EPL-2.0

package gamesnd

import "github.com/ik5/gamesnd/backend"

// AmbientSound is a looping, listener-relative sound used for background
// audio such as music, wind, or rain. Ambients are cached per asset name
// and shared between slots.
type AmbientSound struct {
	b       backend.Backend
	id      backend.SourceID
	buf     *SoundBuffer
	playing bool
}

func newAmbientSound(b backend.Backend, buf *SoundBuffer) *AmbientSound {
	amb := &AmbientSound{b: b, buf: buf}
	if buf == nil {
		return amb
	}

	id, err := b.AllocateSource(buf.id)
	if err != nil {
		amb.buf = nil
		return amb
	}

	amb.id = id
	b.SetSourceLooping(id, true)
	b.SetSourceSpatial(id, backend.Vec3{}, backend.Vec3{}, true)
	return amb
}

func (a *AmbientSound) Play() {
	if a.buf == nil {
		return
	}
	a.b.Play(a.id)
	a.playing = true
}

func (a *AmbientSound) Stop() {
	if a.buf == nil {
		return
	}
	a.b.Stop(a.id)
	a.playing = false
}

// IsPlaying reports the tracked play state. It does not ask the backend, so
// it stays coherent with Play and Stop even on a degraded backend.
func (a *AmbientSound) IsPlaying() bool { return a.playing }

// GetAmbientSound returns the ambient loop for asset, loading it on first
// use. The same asset name always yields the same instance.
func (s *System) GetAmbientSound(asset string) (*AmbientSound, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getAmbientSoundLocked(asset)
}

func (s *System) getAmbientSoundLocked(asset string) (*AmbientSound, bool) {
	if !s.availableLocked() {
		return nil, false
	}

	if amb, ok := s.ambients[asset]; ok {
		return amb, true
	}

	buf, ok := s.resolveBufferLocked(asset)
	if !ok {
		return nil, false
	}

	amb := newAmbientSound(s.backend, buf)
	s.ambients[asset] = amb
	return amb, true
}

// SetAmbient assigns the ambient loop for asset to the named slot. If the
// slot was audible before the switch, the new loop starts even when
// autoplay is false, so ambience never cuts out across a reassignment.
// When the asset cannot be loaded the slot is bound to a silent
// placeholder, never left dangling.
func (s *System) SetAmbient(slot, asset string, autoplay bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.availableLocked() {
		return
	}

	shouldPlay := autoplay
	next, ok := s.getAmbientSoundLocked(asset)

	if prev, bound := s.slots[slot]; bound {
		if ok && prev == next {
			return
		}
		shouldPlay = prev.IsPlaying() || autoplay
		if prev.IsPlaying() {
			prev.Stop()
		}
	}

	if !ok {
		s.slots[slot] = s.silence
		s.log.Info("ambient slot muted", "slot", slot, "asset", asset)
		return
	}

	if shouldPlay {
		next.Play()
	}
	s.slots[slot] = next
	s.log.Info("ambient slot switched", "slot", slot, "asset", asset)
}

// Ambient returns the sound currently bound to the named slot.
func (s *System) Ambient(slot string) (*AmbientSound, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	amb, ok := s.slots[slot]
	return amb, ok
}
