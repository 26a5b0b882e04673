// SPDX-License-Identifier: EPL-2.0

package gamesnd

import "github.com/ik5/gamesnd/backend"

// listenerGain keeps the overall volume below the backend default, leaving
// headroom for many sounds playing at once.
const listenerGain = 0.3

// Viewpoint is the camera state driving the audio listener.
type Viewpoint struct {
	// Position is where the camera sits in world space.
	Position backend.Vec3
	// Target is the point the camera looks at.
	Target backend.Vec3
	// Up is the camera's up vector.
	Up backend.Vec3
}

// UpdateListener moves the audio listener to the viewpoint. Call it once
// per frame from the camera update.
func (s *System) UpdateListener(vp Viewpoint, vel backend.Vec3) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.availableLocked() {
		return
	}

	// The forward vector points from target to position on X and Y but from
	// position to target on Z, matching the coordinate handedness of the
	// rendering side.
	fwd := backend.Vec3{
		X: vp.Position.X - vp.Target.X,
		Y: vp.Position.Y - vp.Target.Y,
		Z: vp.Target.Z - vp.Position.Z,
	}

	s.backend.SetListener(vp.Position, vel, backend.Orientation{Forward: fwd, Up: vp.Up}, listenerGain)
}
