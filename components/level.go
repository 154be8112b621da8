package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is the level root: geometry registered for the rotation
// transaction, level bounds for pivot clamping and camera limits, and the
// current world orientation.
type LevelData struct {
	Name   string
	Width  int
	Height int

	// Angle is the accumulated world rotation in radians. VisualSpin is
	// the in-flight delta of an active rotation transaction, applied to
	// geometry at draw time only; collision extents are corrected once on
	// completion.
	Angle      float64
	VisualSpin float64

	Geometry []*resolv.Object

	SpawnX, SpawnY float64

	Complete      bool
	CompleteTimer float64 // unscaled seconds until the level exits
}

var Level = donburi.NewComponentType[LevelData]()
