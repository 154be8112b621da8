package systems

import (
	"log"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ApplySizePreset resizes the player to a named preset. The hitbox is
// re-anchored at the bottom center so the feet stay planted, which keeps a
// grounded player grounded through the change. Applying the current preset
// again is a no-op in effect; nothing accumulates.
func ApplySizePreset(entry *donburi.Entry, preset cfg.SizePresetID) {
	p, ok := cfg.SizePresets[preset]
	if !ok {
		log.Printf("Warning: unknown size preset %d", preset)
		return
	}

	obj := components.Object.Get(entry)
	player := components.Player.Get(entry)

	cx := obj.X + obj.W/2
	bottom := obj.Y + obj.H

	obj.W = p.HitboxW
	obj.H = p.HitboxH
	obj.X = cx - p.HitboxW/2
	obj.Y = bottom - p.HitboxH
	obj.SetShape(resolv.NewRectangle(0, 0, p.HitboxW, p.HitboxH))
	obj.Update()

	if entry.HasComponent(components.Sprite) {
		sprite := components.Sprite.Get(entry)
		sprite.ScaleX = p.Scale
		sprite.ScaleY = p.Scale
	}

	player.SizePreset = preset
}
