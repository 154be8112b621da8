package components

import "github.com/yohamta/donburi"

// LocomotionData is the per-actor movement state machine: grounded
// debouncing, coyote time, jump buffering and fall tracking.
//
// GroundedRaw is the this-frame collision probe result and drives gameplay
// (coyote, buffering). GroundedStable is the hold-timer debounced signal
// used by FX consumers (footsteps, landing classification). The two are
// kept separate on purpose; collapsing them reintroduces single-frame
// grounded flicker in the FX layer.
type LocomotionData struct {
	Enabled bool

	// Raw horizontal input in [-1, 1], written by the locomotion system
	// from the input component each frame.
	MoveInput float64

	GroundedRaw    bool
	GroundedStable bool
	HoldTimer      float64 // seconds left before stable may flip false

	CoyoteTimer     float64 // seconds left where a jump is still legal after leaving ground
	JumpBufferTimer float64 // seconds left where a buffered jump request is honored
	DoubleJumpUsed  bool

	// Facing is sticky: +1 or -1, retained when no clear directional
	// signal exists.
	Facing float64

	// Fall tracking for the "landed" notification. FallTracking arms on the
	// first airborne frame (walk-off, jump or airborne spawn alike) and
	// disarms on ground contact.
	FallTracking  bool
	FallStartY    float64
	PeakFallSpeed float64 // largest downward velocity observed while airborne

	// Probe overrides; zero values fall back to the configured defaults
	// below the actor's collision box.
	ProbeDepth float64
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
