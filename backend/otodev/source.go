// SPDX-License-Identifier: EPL-2.0

package otodev

import (
	"bytes"
	"io"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/gamesnd/backend"
)

// sourceState tracks one playback source. The oto player is created on Play
// and dropped on Stop, so a stopped source restarts from the beginning.
type sourceState struct {
	pcm    []byte
	player *oto.Player

	looping  bool
	relative bool
	pos, vel backend.Vec3
	rolloff  float32
}

func (st *sourceState) drop() {
	if st.player == nil {
		return
	}
	st.player.Pause()
	st.player.Close()
	st.player = nil
}

func (d *Device) Play(src backend.SourceID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.sources[src]
	if !ok || d.closed {
		return
	}
	if st.player != nil && st.player.IsPlaying() {
		return
	}
	st.drop()

	var r io.Reader = bytes.NewReader(st.pcm)
	if st.looping {
		r = &loopReader{pcm: st.pcm}
	}

	st.player = d.ctx.NewPlayer(r)
	st.player.SetVolume(d.volumeForLocked(st))
	st.player.Play()
}

func (d *Device) Stop(src backend.SourceID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if st, ok := d.sources[src]; ok {
		st.drop()
	}
}

func (d *Device) IsPlaying(src backend.SourceID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.sources[src]
	return ok && st.player != nil && st.player.IsPlaying()
}

func (d *Device) SetSourceSpatial(src backend.SourceID, pos, vel backend.Vec3, relative bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.sources[src]
	if !ok {
		return
	}
	st.pos, st.vel, st.relative = pos, vel, relative
	d.refreshVolumeLocked(st)
}

func (d *Device) SetSourceRolloff(src backend.SourceID, rolloff float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st, ok := d.sources[src]
	if !ok {
		return
	}
	st.rolloff = rolloff
	d.refreshVolumeLocked(st)
}

func (d *Device) SetSourceLooping(src backend.SourceID, looping bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Takes effect on the next Play; an already-playing player keeps its
	// current reader.
	if st, ok := d.sources[src]; ok {
		st.looping = looping
	}
}

func (d *Device) SetListener(pos, vel backend.Vec3, orient backend.Orientation, gain float32) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Orientation and velocity are accepted for interface compatibility but
	// do not influence this backend's output.
	_ = vel
	_ = orient

	d.listenerPos = pos
	d.listenerGain = gain

	for _, st := range d.sources {
		d.refreshVolumeLocked(st)
	}
}

func (d *Device) refreshVolumeLocked(st *sourceState) {
	if st.player != nil {
		st.player.SetVolume(d.volumeForLocked(st))
	}
}

func (d *Device) volumeForLocked(st *sourceState) float64 {
	if st.relative {
		return float64(clampGain(d.listenerGain))
	}
	return float64(attenuatedGain(d.listenerGain, st.rolloff, distance(st.pos, d.listenerPos)))
}

// loopReader replays the same PCM forever. Reads never return io.EOF.
type loopReader struct {
	pcm []byte
	off int
}

func (l *loopReader) Read(p []byte) (int, error) {
	if len(l.pcm) == 0 {
		return 0, io.EOF
	}

	total := 0
	for total < len(p) {
		n := copy(p[total:], l.pcm[l.off:])
		total += n
		l.off += n
		if l.off >= len(l.pcm) {
			l.off = 0
		}
	}
	return total, nil
}
