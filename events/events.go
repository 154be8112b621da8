// Package events defines the typed notifications the locomotion state
// machine publishes for FX, audio and animation collaborators. Subscribers
// register around their own active lifetime; delivery happens once per
// frame when the scene processes pending events.
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// Jumped fires when a jump is resolved (ground, coyote or double jump).
type Jumped struct {
	Entry *donburi.Entry
}

// Landed fires exactly once per air-to-stable-ground transition.
// FallDistance is in pixels from the recorded air-start height; it is
// non-negative for a true fall. PeakFallSpeed is the largest downward
// velocity observed while airborne, used to classify soft and hard
// landings.
type Landed struct {
	Entry         *donburi.Entry
	FallDistance  float64
	PeakFallSpeed float64
}

var (
	JumpedEvent = devents.NewEventType[Jumped]()
	LandedEvent = devents.NewEventType[Landed]()
)

// Process delivers all pending events to subscribers.
func Process(w donburi.World) {
	devents.ProcessAllEvents(w)
}
