// SPDX-License-Identifier: EPL-2.0

package otodev

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/gamesnd/audio"
	"github.com/ik5/gamesnd/backend"
)

// The oto context is opened once with a fixed output format; stored buffers
// are converted to it at upload time.
const (
	deviceRate     = 48000
	deviceChannels = 2
)

// Device is a backend.Backend over github.com/ebitengine/oto/v3.
//
// oto has no notion of 3D sources, so spatialization is approximated: each
// source carries position/velocity state and playback volume is derived from
// the distance to the listener using an inverse rolloff curve. Panning and
// doppler are out of scope here.
type Device struct {
	mu sync.Mutex

	ctx    *oto.Context
	closed bool

	buffers map[backend.BufferID][]byte // device-format PCM
	sources map[backend.SourceID]*sourceState

	nextBuffer backend.BufferID
	nextSource backend.SourceID

	listenerPos  backend.Vec3
	listenerGain float32
}

// New opens the default output device. The returned Device is available until
// Close is called. Hosts that want to survive a missing device should fall
// back to backend.Null when New fails.
func New() (*Device, error) {
	op := &oto.NewContextOptions{
		SampleRate:   deviceRate,
		ChannelCount: deviceChannels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	<-ready

	return &Device{
		ctx:          ctx,
		buffers:      make(map[backend.BufferID][]byte),
		sources:      make(map[backend.SourceID]*sourceState),
		listenerGain: 1.0,
	}, nil
}

func (d *Device) Available() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.ctx != nil && !d.closed
}

// AllocateBuffer converts the PCM to the device format (rate and channel
// count) and stores it. Conversion happens once per buffer, not per play.
func (d *Device) AllocateBuffer(pcm []byte, channels, sampleRate int) (backend.BufferID, error) {
	if channels <= 0 || sampleRate <= 0 {
		return 0, fmt.Errorf("%w: %d channels at %d Hz", ErrBadFormat, channels, sampleRate)
	}

	converted, err := toDeviceFormat(pcm, channels, sampleRate)
	if err != nil {
		return 0, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, backend.ErrUnavailable
	}

	d.nextBuffer++
	id := d.nextBuffer
	d.buffers[id] = converted

	return id, nil
}

func (d *Device) AllocateSource(buf backend.BufferID) (backend.SourceID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return 0, backend.ErrUnavailable
	}
	pcm, ok := d.buffers[buf]
	if !ok {
		return 0, fmt.Errorf("%w: %d", backend.ErrUnknownBuffer, buf)
	}

	d.nextSource++
	id := d.nextSource
	d.sources[id] = &sourceState{
		pcm:     pcm,
		rolloff: 1.0,
	}

	return id, nil
}

// Close stops all playback and suspends the context. oto offers no context
// teardown, so Suspend is the closest release we get; the Device reports
// unavailable afterwards.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true

	for _, st := range d.sources {
		st.drop()
	}
	d.sources = map[backend.SourceID]*sourceState{}
	d.buffers = map[backend.BufferID][]byte{}

	if err := d.ctx.Suspend(); err != nil {
		return fmt.Errorf("suspending audio context: %w", err)
	}
	return nil
}

// toDeviceFormat pushes arbitrary-format PCM through the processing pipeline
// until it matches the device rate and channel count.
func toDeviceFormat(pcm []byte, channels, sampleRate int) ([]byte, error) {
	var src audio.Source = audio.NewPCM16Source(pcm, channels, sampleRate)

	// Surround material folds down to mono first; mono is upmixed to the
	// device's stereo after collection.
	if channels > deviceChannels {
		src = audio.NewMonoMixer(src)
	}
	if sampleRate != deviceRate {
		src = audio.NewResampler(src, deviceRate)
	}

	out, outChannels, _, err := audio.CollectPCM16(src, 4096)
	if err != nil {
		return nil, fmt.Errorf("converting buffer: %w", err)
	}

	if outChannels == 1 {
		out = monoToStereo(out)
	}
	return out, nil
}
