// SPDX-License-Identifier: EPL-2.0

package otodev

import (
	"encoding/binary"
	"math"

	"github.com/ik5/gamesnd/backend"
)

func distance(a, b backend.Vec3) float32 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	dz := float64(a.Z - b.Z)
	return float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
}

// attenuatedGain scales the listener gain by an inverse rolloff curve:
// gain / (1 + rolloff * dist). A rolloff of zero disables attenuation.
func attenuatedGain(gain, rolloff, dist float32) float32 {
	if rolloff > 0 && dist > 0 {
		gain /= 1 + rolloff*dist
	}
	return clampGain(gain)
}

func clampGain(g float32) float32 {
	if g < 0 {
		return 0
	}
	if g > 1 {
		return 1
	}
	return g
}

// monoToStereo duplicates each 16-bit mono frame into both output channels.
func monoToStereo(pcm []byte) []byte {
	frames := len(pcm) / 2
	out := make([]byte, 0, len(pcm)*2)

	for i := range frames {
		v := binary.LittleEndian.Uint16(pcm[i*2:])
		out = binary.LittleEndian.AppendUint16(out, v)
		out = binary.LittleEndian.AppendUint16(out, v)
	}
	return out
}
