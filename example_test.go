// SPDX-License-Identifier: EPL-2.0

package gamesnd_test

import (
	"fmt"
	"log/slog"

	"github.com/ik5/gamesnd"
	"github.com/ik5/gamesnd/backend"
)

// A game's audio code looks the same whether or not a real device is
// present. With the Null backend every handle is inert and the game simply
// runs silently.
func Example() {
	snd := gamesnd.New(backend.Null{}, &gamesnd.Config{
		Logger: slog.New(slog.DiscardHandler),
	})
	defer snd.Shutdown()

	snd.CreateSource("door.front", "door_creak")
	door := snd.GetSource("door.front")
	door.SetPosition(backend.Vec3{X: 12, Y: 0, Z: -3})
	door.Play()

	snd.SetAmbient("weather", "rain_loop", true)

	fmt.Println("available:", snd.Available())
	fmt.Println("door playing:", door.IsPlaying())
	// Output:
	// available: false
	// door playing: false
}
