// SPDX-License-Identifier: EPL-2.0

package gamesnd

import (
	"testing"

	"github.com/ik5/gamesnd/internal/audiotest"
)

func TestSetAmbient_AutoplayStartsLoop(t *testing.T) {
	t.Parallel()

	mock := audiotest.NewMockBackend()
	sys, dir := newTestSystem(t, mock)
	audiotest.WriteWAVAsset(t, dir, "rain", 8000, 1, audiotest.SineSamples(8000, 128, 220))

	sys.SetAmbient("weather", "rain", true)

	amb, ok := sys.Ambient("weather")
	if !ok {
		t.Fatal("Ambient() ok = false after SetAmbient")
	}
	if !amb.IsPlaying() {
		t.Error("ambient not playing with autoplay set")
	}

	// Ambient loops are looping and listener-relative on the backend.
	if len(mock.Looping) != 1 {
		t.Fatalf("backend looping sources = %d, want 1", len(mock.Looping))
	}
	for _, looping := range mock.Looping {
		if !looping {
			t.Error("ambient source not flagged as looping")
		}
	}
}

func TestSetAmbient_NoAutoplayStaysSilent(t *testing.T) {
	t.Parallel()

	mock := audiotest.NewMockBackend()
	sys, dir := newTestSystem(t, mock)
	audiotest.WriteWAVAsset(t, dir, "rain", 8000, 1, audiotest.SineSamples(8000, 128, 220))

	sys.SetAmbient("weather", "rain", false)

	amb, _ := sys.Ambient("weather")
	if amb.IsPlaying() {
		t.Error("ambient playing without autoplay")
	}
	if len(mock.Plays) != 0 {
		t.Errorf("backend plays = %d, want 0", len(mock.Plays))
	}
}

// Reassigning an audible slot keeps the ambience audible: the old loop
// stops and the new one starts, even without autoplay.
func TestSetAmbient_ContinuityAcrossReassignment(t *testing.T) {
	t.Parallel()

	mock := audiotest.NewMockBackend()
	sys, dir := newTestSystem(t, mock)
	audiotest.WriteWAVAsset(t, dir, "rain", 8000, 1, audiotest.SineSamples(8000, 128, 220))
	audiotest.WriteWAVAsset(t, dir, "wind", 8000, 1, audiotest.SineSamples(8000, 128, 110))

	sys.SetAmbient("weather", "rain", true)
	rain, _ := sys.GetAmbientSound("rain")

	sys.SetAmbient("weather", "wind", false)
	wind, _ := sys.GetAmbientSound("wind")

	if rain.IsPlaying() {
		t.Error("previous ambient still playing after reassignment")
	}
	if !wind.IsPlaying() {
		t.Error("new ambient silent although the slot was audible")
	}
	if amb, _ := sys.Ambient("weather"); amb != wind {
		t.Error("slot not bound to the new ambient")
	}
}

func TestSetAmbient_SilentSlotStaysSilent(t *testing.T) {
	t.Parallel()

	mock := audiotest.NewMockBackend()
	sys, dir := newTestSystem(t, mock)
	audiotest.WriteWAVAsset(t, dir, "rain", 8000, 1, audiotest.SineSamples(8000, 128, 220))
	audiotest.WriteWAVAsset(t, dir, "wind", 8000, 1, audiotest.SineSamples(8000, 128, 110))

	sys.SetAmbient("weather", "rain", false)
	sys.SetAmbient("weather", "wind", false)

	wind, _ := sys.GetAmbientSound("wind")
	if wind.IsPlaying() {
		t.Error("new ambient playing although the slot was silent and autoplay false")
	}

	// Nothing was audible at any point, so the backend saw no traffic.
	if len(mock.Plays) != 0 || len(mock.Stops) != 0 {
		t.Errorf("backend plays/stops = %d/%d, want 0/0 for a silent switch",
			len(mock.Plays), len(mock.Stops))
	}
}

func TestSetAmbient_SameAssetIsIdempotent(t *testing.T) {
	t.Parallel()

	mock := audiotest.NewMockBackend()
	sys, dir := newTestSystem(t, mock)
	audiotest.WriteWAVAsset(t, dir, "rain", 8000, 1, audiotest.SineSamples(8000, 128, 220))

	sys.SetAmbient("weather", "rain", true)
	sys.SetAmbient("weather", "rain", true)

	if len(mock.Plays) != 1 {
		t.Errorf("backend plays = %d, want 1 for a repeated assignment", len(mock.Plays))
	}
	if len(mock.Stops) != 0 {
		t.Errorf("backend stops = %d, want 0 for a repeated assignment", len(mock.Stops))
	}
}

// A missing asset binds the slot to the silent placeholder instead of
// leaving it dangling, and stops whatever played there before.
func TestSetAmbient_MissingAssetMutesSlot(t *testing.T) {
	t.Parallel()

	mock := audiotest.NewMockBackend()
	sys, dir := newTestSystem(t, mock)
	audiotest.WriteWAVAsset(t, dir, "rain", 8000, 1, audiotest.SineSamples(8000, 128, 220))

	sys.SetAmbient("weather", "rain", true)
	sys.SetAmbient("weather", "no_such_loop", true)

	amb, ok := sys.Ambient("weather")
	if !ok {
		t.Fatal("Ambient() ok = false, slot left dangling")
	}
	if amb.IsPlaying() {
		t.Error("muted slot reports playing")
	}
	// The placeholder is harmless to drive.
	amb.Play()
	amb.Stop()

	rain, _ := sys.GetAmbientSound("rain")
	if rain.IsPlaying() {
		t.Error("previous ambient still playing after the slot was muted")
	}
}

func TestGetAmbientSound_Memoized(t *testing.T) {
	t.Parallel()

	sys, dir := newTestSystem(t, audiotest.NewMockBackend())
	audiotest.WriteWAVAsset(t, dir, "hum", 8000, 1, audiotest.SineSamples(8000, 64, 60))

	a, ok := sys.GetAmbientSound("hum")
	if !ok {
		t.Fatal("GetAmbientSound() ok = false, want true")
	}
	b, _ := sys.GetAmbientSound("hum")
	if a != b {
		t.Error("same asset name produced distinct ambient instances")
	}
}
