// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"testing"
)

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	m := NewMonoMixer(src)

	if m.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", m.Channels())
	}
	if m.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", m.SampleRate())
	}
}

func TestMonoMixer_AveragesStereo(t *testing.T) {
	t.Parallel()

	// Left channel 1.0, right channel 0.0 should average to 0.5.
	src := newMockSource(8000, 2, 10, func(sample, channel int) float32 {
		if channel == 0 {
			return 1.0
		}
		return 0.0
	})
	m := NewMonoMixer(src)

	dst := make([]float32, 10)
	n, err := m.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 10 {
		t.Fatalf("ReadSamples() n = %d, want 10", n)
	}
	for i := range n {
		if dst[i] != 0.5 {
			t.Errorf("dst[%d] = %v, want 0.5", i, dst[i])
		}
	}
}

func TestMonoMixer_MonoPassThrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 20, 0.75)
	m := NewMonoMixer(src)

	dst := make([]float32, 20)
	n, err := m.ReadSamples(dst)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 20 {
		t.Fatalf("ReadSamples() n = %d, want 20", n)
	}
	for i := range n {
		if dst[i] != 0.75 {
			t.Errorf("dst[%d] = %v, want 0.75", i, dst[i])
		}
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	src := newSilentSource(8000, 2, 100)
	m := NewMonoMixer(src)

	n, err := m.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}
