// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"io"
	"testing"
)

// fakeMP3Reader stands in for gomp3.Decoder.
type fakeMP3Reader struct {
	rate   int
	pcm    []byte
	offset int
}

func (f *fakeMP3Reader) SampleRate() int { return f.rate }

func (f *fakeMP3Reader) Read(p []byte) (int, error) {
	if f.offset >= len(f.pcm) {
		return 0, io.EOF
	}
	n := copy(p, f.pcm[f.offset:])
	f.offset += n
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	dec := Decoder{}
	if _, err := dec.Decode(bytes.NewReader([]byte("not an mp3"))); err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	// Two samples: 0x4000 (0.5) and 0xC000 (-0.5), little-endian.
	src := &source{
		dec:  &fakeMP3Reader{rate: 44100, pcm: []byte{0x00, 0x40, 0x00, 0xC0}},
		rate: 44100,
		buf:  make([]byte, 16),
	}

	if src.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", src.Channels())
	}

	dst := make([]float32, 2)
	n, err := src.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 2 {
		t.Fatalf("ReadSamples() n = %d, want 2", n)
	}

	if dst[0] != 0.5 {
		t.Errorf("dst[0] = %v, want 0.5", dst[0])
	}
	if dst[1] != -0.5 {
		t.Errorf("dst[1] = %v, want -0.5", dst[1])
	}
}

func TestSource_ReadSamples_EOF(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:  &fakeMP3Reader{rate: 44100},
		rate: 44100,
		buf:  make([]byte, 16),
	}

	dst := make([]float32, 4)
	if n, err := src.ReadSamples(dst); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() = (%d, %v), want (0, io.EOF)", n, err)
	}
}
