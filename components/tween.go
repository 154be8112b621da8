package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives floating platform movement. The platform position is
// origin + axis*offset, where offset comes from the gween sequence. The
// rotation transaction rotates origin and axis instead of the absolute
// tween targets, so platforms keep oscillating correctly after a turn.
type TweenData struct {
	Seq          *gween.Sequence
	OriginX      float64
	OriginY      float64
	AxisX, AxisY float64 // unit direction of travel
}

var Tween = donburi.NewComponentType[TweenData]()
