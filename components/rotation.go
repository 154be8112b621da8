package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RotationPhase is the explicit state of the rotation transaction. The
// whole transaction lives in plain component data and is advanced by a
// per-frame tick, so it can be inspected and tested without engine
// callbacks.
type RotationPhase int

const (
	RotationIdle RotationPhase = iota
	RotationRotating
	RotationCooldown
)

// ActorSnapshot records one registered actor's pre-transaction state so it
// can be restored when the transaction unwinds. Entries may become invalid
// mid-transaction (actor destroyed); all consumers skip invalid entries.
type ActorSnapshot struct {
	Entry             *donburi.Entry
	StartX, StartY    float64
	StartAngle        float64
	VelX, VelY        float64
	Simulated         bool
	LocomotionEnabled bool
}

// GeometrySnapshot records a level object's pre-transaction placement.
// Positions are re-derived from the snapshot each step rather than
// integrated incrementally, so the completion state is exact.
type GeometrySnapshot struct {
	Object         *resolv.Object
	StartX, StartY float64
	StartW, StartH float64
}

// RotationData is the singleton rotation transaction controller state.
type RotationData struct {
	Phase        RotationPhase
	Direction    float64 // +1 clockwise, -1 counter-clockwise
	Quarters     int     // accumulated 90-degree turns, for exact snapping
	CooldownLeft float64

	PivotX, PivotY float64
	PivotEntry     *donburi.Entry

	Tween   *gween.Tween // eased angle progress, nil outside a transaction
	Applied float64      // eased angle applied so far, radians

	// Actors is the registered participant set; Snapshot and Geometry are
	// populated for the duration of one transaction.
	Actors   []*donburi.Entry
	Snapshot []ActorSnapshot
	Geometry []GeometrySnapshot
}

var Rotation = donburi.NewComponentType[RotationData]()
