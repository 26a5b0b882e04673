// SPDX-License-Identifier: EPL-2.0

package gamesnd

import (
	"os"
	"path/filepath"

	"github.com/ik5/gamesnd/audio"
	"github.com/ik5/gamesnd/backend"
)

// SoundBuffer is one decoded asset uploaded to the backend. Buffers are
// cached per asset name, so two resources built from the same name share
// the same buffer.
type SoundBuffer struct {
	name       string
	channels   int
	sampleRate int
	id         backend.BufferID
}

func (b *SoundBuffer) Name() string    { return b.name }
func (b *SoundBuffer) Channels() int   { return b.channels }
func (b *SoundBuffer) SampleRate() int { return b.sampleRate }

// FindSoundFile probes the sound directory for name with each configured
// extension in order and returns the first file that exists.
func (s *System) FindSoundFile(name string) (path, ext string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findSoundFileLocked(name)
}

func (s *System) findSoundFileLocked(name string) (path, ext string, ok bool) {
	if s.path == "" {
		return "", "", false
	}
	for _, ext := range s.exts {
		candidate := filepath.Join(s.path, name+"."+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, ext, true
		}
	}
	return "", "", false
}

// resolveBufferLocked returns the cached buffer for name, loading and
// uploading it on first use. Failures are logged and reported as a missing
// buffer; nothing is cached for them, so a later call retries the disk.
func (s *System) resolveBufferLocked(name string) (*SoundBuffer, bool) {
	if !s.availableLocked() {
		return nil, false
	}

	if buf, ok := s.buffers[name]; ok {
		s.log.Debug("sound loaded from cache", "name", name)
		return buf, true
	}

	path, ext, ok := s.findSoundFileLocked(name)
	if !ok {
		s.log.Info("sound file not found", "name", name, "path", s.path)
		return nil, false
	}

	dec, ok := s.decoders.Get(ext)
	if !ok {
		s.log.Warn("no decoder for sound file", "name", name, "ext", ext)
		return nil, false
	}

	f, err := os.Open(path)
	if err != nil {
		s.log.Info("opening sound file", "file", path, "err", err)
		return nil, false
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		s.log.Info("decoding sound file", "file", path, "err", err)
		return nil, false
	}
	defer src.Close()

	pcm, channels, rate, err := audio.CollectPCM16(src, s.decodeBuf)
	if err != nil {
		s.log.Info("reading sound samples", "file", path, "err", err)
		return nil, false
	}

	id, err := s.backend.AllocateBuffer(pcm, channels, rate)
	if err != nil {
		s.log.Info("uploading sound buffer", "file", path, "err", err)
		return nil, false
	}

	buf := &SoundBuffer{name: name, channels: channels, sampleRate: rate, id: id}
	s.buffers[name] = buf
	s.log.Info("sound loaded", "name", name, "file", path)
	return buf, true
}
