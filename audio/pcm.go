// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/gamesnd/utils"
)

// CollectPCM16 drains src and returns its full content as interleaved 16-bit
// little-endian PCM bytes, together with the channel count and sample rate.
//
// The whole stream is held in memory, so this is meant for short game assets
// (effects, ambient loops), not for large music files.
func CollectPCM16(src Source, bufferSize int) (pcm []byte, channels, sampleRate int, err error) {
	channels = src.Channels()
	sampleRate = src.SampleRate()

	buf := make([]float32, bufferSize)
	// One second of audio is a reasonable starting capacity for short assets.
	pcm = make([]byte, 0, 2*sampleRate*channels)

	for {
		n, rerr := src.ReadSamples(buf)
		for i := range n {
			v := utils.Float32ToInt16(buf[i])
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(v))
		}

		if rerr == io.EOF {
			return pcm, channels, sampleRate, nil
		}
		if rerr != nil {
			return nil, 0, 0, fmt.Errorf("collecting pcm: %w", rerr)
		}
	}
}

// PCM16Source adapts interleaved 16-bit little-endian PCM bytes back into a
// Source, for feeding stored buffers through the processing pipeline
// (e.g. resampling to a device rate).
type PCM16Source struct {
	pcm        []byte
	sampleRate int
	channels   int
	off        int
}

func NewPCM16Source(pcm []byte, channels, sampleRate int) *PCM16Source {
	return &PCM16Source{
		pcm:        pcm,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *PCM16Source) SampleRate() int { return s.sampleRate }
func (s *PCM16Source) Channels() int   { return s.channels }
func (s *PCM16Source) BufSize() int    { return 4096 }
func (s *PCM16Source) Close() error    { return nil }

func (s *PCM16Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	remaining := (len(s.pcm) - s.off) / 2
	if remaining == 0 {
		return 0, io.EOF
	}

	n := min(len(dst), remaining)
	for i := range n {
		v := int16(binary.LittleEndian.Uint16(s.pcm[s.off:]))
		dst[i] = utils.Int16ToFloat32(v)
		s.off += 2
	}

	if s.off >= len(s.pcm) {
		return n, io.EOF
	}
	return n, nil
}
