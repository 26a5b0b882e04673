package audio

import (
	"io"
	"testing"
)

func readAll(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var out []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	r := NewResampler(src, 16000)

	if r.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", r.SampleRate())
	}
	if r.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", r.Channels())
	}
}

func TestResampler_Downsample_Length(t *testing.T) {
	t.Parallel()

	// One second of mono audio at 44.1kHz resampled to 16kHz
	// should yield roughly 16000 samples.
	src := newSineSource(44100, 1, 44100, 440.0)
	r := NewResampler(src, 16000)

	out := readAll(t, r, 4096)

	if len(out) < 15800 || len(out) > 16200 {
		t.Errorf("output samples = %d, want ~16000", len(out))
	}
}

func TestResampler_Upsample_Length(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 1, 8000, 200.0)
	r := NewResampler(src, 48000)

	out := readAll(t, r, 4096)

	if len(out) < 47000 || len(out) > 48100 {
		t.Errorf("output samples = %d, want ~48000", len(out))
	}
}

func TestResampler_PreservesChannels(t *testing.T) {
	t.Parallel()

	src := newConstantSource(44100, 2, 4410, 0.25)
	r := NewResampler(src, 22050)

	out := readAll(t, r, 512)

	if len(out)%2 != 0 {
		t.Fatalf("output length %d is not frame aligned", len(out))
	}
	// Constant input should stay constant through interpolation.
	for i, v := range out {
		if v < 0.2 || v > 0.3 {
			t.Fatalf("out[%d] = %v, want ~0.25", i, v)
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	r := NewResampler(src, 22050)

	dst := make([]float32, 3) // not a multiple of 2 channels
	if _, err := r.ReadSamples(dst); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples() error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EmptySource(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 1, 0)
	r := NewResampler(src, 16000)

	dst := make([]float32, 64)
	if _, err := r.ReadSamples(dst); err != io.EOF {
		t.Errorf("ReadSamples() on empty source error = %v, want io.EOF", err)
	}
}

func BenchmarkResampler_Downsample(b *testing.B) {
	for b.Loop() {
		src := newSineSource(48000, 2, 48000, 440.0)
		r := NewResampler(src, 16000)
		dst := make([]float32, 4096)
		for {
			if _, err := r.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
