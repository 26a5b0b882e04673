// SPDX-License-Identifier: EPL-2.0

package gamesnd

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ik5/gamesnd/audio"
	"github.com/ik5/gamesnd/backend"
)

// System owns every audio resource of a running game: decoded buffers keyed
// by asset name, named positional sources, and ambient loop slots. All
// methods degrade to no-ops when the backend is unavailable or the system
// has been shut down, so callers never branch on audio state.
type System struct {
	mu sync.Mutex

	backend   backend.Backend
	log       *slog.Logger
	exts      []string
	decoders  *audio.Registry
	decodeBuf int

	path     string
	buffers  map[string]*SoundBuffer
	sources  map[string]*SoundSource
	ambients map[string]*AmbientSound
	slots    map[string]*AmbientSound
	silence  *AmbientSound
	closed   bool
}

// New wires a System to a backend. At most one Config is honored; zero
// fields fall back to DefaultConfig.
func New(b backend.Backend, cfg ...*Config) *System {
	var c *Config
	if len(cfg) > 0 {
		c = cfg[0]
	}
	c = c.withDefaults()

	s := &System{
		backend:   b,
		log:       c.Logger,
		exts:      c.Extensions,
		decoders:  c.Decoders,
		decodeBuf: c.DecodeBufferSize,
		buffers:   make(map[string]*SoundBuffer),
		sources:   make(map[string]*SoundSource),
		ambients:  make(map[string]*AmbientSound),
		slots:     make(map[string]*AmbientSound),
	}

	// The silence placeholder backs ambient slots whose asset could not be
	// loaded. It carries no buffer, so playing it does nothing.
	s.silence = newAmbientSound(b, nil)
	return s
}

// Init points the System at the directory holding sound assets. A missing
// or unreadable directory is logged and leaves the System muted rather than
// failing.
func (s *System) Init(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(path)
	if err != nil {
		s.log.Warn("sound path not usable, audio stays muted", "path", path, "err", err)
		return fmt.Errorf("sound path %s: %w", path, err)
	}
	if !info.IsDir() {
		s.log.Warn("sound path is not a directory, audio stays muted", "path", path)
		return fmt.Errorf("sound path %s: %w", path, ErrNotDirectory)
	}

	s.path = path
	if s.backend.Available() {
		s.log.Info("audio initialized", "path", path)
	} else {
		s.log.Warn("audio backend unavailable, sounds are disabled")
	}
	return nil
}

// Available reports whether the System can currently produce sound.
func (s *System) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableLocked()
}

func (s *System) availableLocked() bool {
	return !s.closed && s.backend.Available()
}

// Shutdown releases the backend. It is safe to call more than once and
// safe to keep using the System afterwards; every method becomes a no-op.
func (s *System) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	if err := s.backend.Close(); err != nil {
		s.log.Warn("closing audio backend", "err", err)
	}
	s.log.Info("audio shut down")
}
