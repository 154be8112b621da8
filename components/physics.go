package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds per-actor velocity state. Velocities are in pixels per
// second; integration happens in the collision system using the scaled
// delta time. Simulated=false freezes the actor entirely (used by the
// rotation transaction's freeze window).
type PhysicsData struct {
	VelX      float64
	VelY      float64
	Gravity   float64
	MaxSpeed  float64
	Simulated bool
	OnGround  *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
