package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// SpriteData is a flat-colored rectangle sprite. Angle is visual only; the
// rotation transaction counter-rotates it to keep actors upright while the
// world turns.
type SpriteData struct {
	W, H   float64
	Color  color.RGBA
	Angle  float64 // radians
	ScaleX float64
	ScaleY float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
