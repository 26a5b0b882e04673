// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"sync"

	"github.com/ik5/gamesnd/backend"
)

// BufferData records one AllocateBuffer call.
type BufferData struct {
	PCM        []byte
	Channels   int
	SampleRate int
}

// ListenerState records one SetListener call.
type ListenerState struct {
	Pos    backend.Vec3
	Vel    backend.Vec3
	Orient backend.Orientation
	Gain   float32
}

// MockBackend is a recording backend.Backend for tests. It is available
// unless Down is set, tracks per-source play state, and counts every call so
// tests can assert that degraded paths perform no backend work.
type MockBackend struct {
	mu sync.Mutex

	Down            bool
	FailAllocBuffer bool

	Buffers   map[backend.BufferID]BufferData
	Sources   map[backend.SourceID]backend.BufferID
	Looping   map[backend.SourceID]bool
	Listeners []ListenerState

	Plays []backend.SourceID
	Stops []backend.SourceID

	CallCount  int
	CloseCount int

	playing map[backend.SourceID]bool
	nextBuf backend.BufferID
	nextSrc backend.SourceID
}

func NewMockBackend() *MockBackend {
	return &MockBackend{
		Buffers: make(map[backend.BufferID]BufferData),
		Sources: make(map[backend.SourceID]backend.BufferID),
		Looping: make(map[backend.SourceID]bool),
		playing: make(map[backend.SourceID]bool),
	}
}

func (m *MockBackend) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.Down
}

func (m *MockBackend) AllocateBuffer(pcm []byte, channels, sampleRate int) (backend.BufferID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++

	if m.Down || m.FailAllocBuffer {
		return 0, backend.ErrUnavailable
	}

	m.nextBuf++
	m.Buffers[m.nextBuf] = BufferData{PCM: pcm, Channels: channels, SampleRate: sampleRate}
	return m.nextBuf, nil
}

func (m *MockBackend) AllocateSource(buf backend.BufferID) (backend.SourceID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++

	if _, ok := m.Buffers[buf]; !ok {
		return 0, backend.ErrUnknownBuffer
	}

	m.nextSrc++
	m.Sources[m.nextSrc] = buf
	return m.nextSrc, nil
}

func (m *MockBackend) SetSourceSpatial(src backend.SourceID, pos, vel backend.Vec3, relative bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
}

func (m *MockBackend) SetSourceRolloff(src backend.SourceID, rolloff float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
}

func (m *MockBackend) SetSourceLooping(src backend.SourceID, looping bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	m.Looping[src] = looping
}

func (m *MockBackend) Play(src backend.SourceID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	m.Plays = append(m.Plays, src)
	m.playing[src] = true
}

func (m *MockBackend) Stop(src backend.SourceID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	m.Stops = append(m.Stops, src)
	m.playing[src] = false
}

func (m *MockBackend) IsPlaying(src backend.SourceID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	return m.playing[src]
}

func (m *MockBackend) SetListener(pos, vel backend.Vec3, orient backend.Orientation, gain float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount++
	m.Listeners = append(m.Listeners, ListenerState{Pos: pos, Vel: vel, Orient: orient, Gain: gain})
}

func (m *MockBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCount++
	return nil
}
