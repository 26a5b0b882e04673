// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/gamesnd/formats/wav"
	"github.com/ik5/gamesnd/utils"
)

// WriteWAVAsset writes a playable 16-bit PCM WAV under dir as name+".wav"
// and returns its path. Assets written this way are resolvable by the sound
// system's file search.
func WriteWAVAsset(tb testing.TB, dir, name string, sampleRate, channels int, samples []int16) string {
	tb.Helper()

	path := filepath.Join(dir, name+".wav")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("creating wav asset %s: %v", name, err)
	}
	defer f.Close()

	if err := wav.WritePCM16(f, sampleRate, channels, samples); err != nil {
		tb.Fatalf("writing wav asset %s: %v", name, err)
	}
	return path
}

// SineSamples returns count frames of a mono sine tone as 16-bit PCM.
func SineSamples(sampleRate, count int, frequency float64) []int16 {
	src := NewSineSource(sampleRate, 1, count, frequency)
	out := make([]int16, 0, count)
	buf := make([]float32, 256)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			out = append(out, utils.Float32ToInt16(buf[i]))
		}
		if err != nil {
			return out
		}
	}
}
