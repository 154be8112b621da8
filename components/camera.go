package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the world-space camera center. LookAheadX holds the smoothed
// horizontal lead offset so the view points where the player is heading.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64
}

var Camera = donburi.NewComponentType[CameraData]()
