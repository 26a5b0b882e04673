// SPDX-License-Identifier: EPL-2.0

package gamesnd

import (
	"log/slog"

	"github.com/ik5/gamesnd/audio"
	"github.com/ik5/gamesnd/formats/aiff"
	"github.com/ik5/gamesnd/formats/mp3"
	"github.com/ik5/gamesnd/formats/vorbis"
	"github.com/ik5/gamesnd/formats/wav"
)

// Config tunes a System. Zero fields are filled from DefaultConfig, so a
// partial Config is fine:
//
//	snd := gamesnd.New(dev, &gamesnd.Config{Logger: logger})
type Config struct {
	// Logger receives load, switch, and degradation events.
	Logger *slog.Logger

	// Extensions is the probe order for asset files, without dots.
	Extensions []string

	// Decoders maps extensions to their container decoders.
	Decoders *audio.Registry

	// DecodeBufferSize is the read chunk used while collecting PCM.
	DecodeBufferSize int
}

// DefaultExtensions is the asset probe order: compressed container first,
// raw fallback second, extra fallbacks after.
func DefaultExtensions() []string {
	return []string{"ogg", "wav", "mp3", "aiff"}
}

// DefaultRegistry returns a Registry with every decoder this module ships.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	return reg
}

func DefaultConfig() *Config {
	return &Config{
		Logger:           slog.Default(),
		Extensions:       DefaultExtensions(),
		Decoders:         DefaultRegistry(),
		DecodeBufferSize: 4096,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	def := DefaultConfig()
	if c == nil {
		return def
	}

	out := *c
	if out.Logger == nil {
		out.Logger = def.Logger
	}
	if len(out.Extensions) == 0 {
		out.Extensions = def.Extensions
	}
	if out.Decoders == nil {
		out.Decoders = def.Decoders
	}
	if out.DecodeBufferSize <= 0 {
		out.DecodeBufferSize = def.DecodeBufferSize
	}
	return &out
}
