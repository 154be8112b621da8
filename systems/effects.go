package systems

import (
	"math"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (squash/stretch, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateSquashStretchEffects(ecs)
	updateAutoDestroy(ecs)
}

// updateSquashStretchEffects lerps scale values toward target and removes when normalized
func updateSquashStretchEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)

		ss.ScaleX += (ss.TargetX - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (ss.TargetY - ss.ScaleY) * ss.LerpSpeed

		if e.HasComponent(components.Sprite) {
			sprite := components.Sprite.Get(e)
			base := 1.0
			if e.HasComponent(components.Player) {
				if preset, ok := cfg.SizePresets[components.Player.Get(e).SizePreset]; ok {
					base = preset.Scale
				}
			}
			sprite.ScaleX = base * ss.ScaleX
			sprite.ScaleY = base * ss.ScaleY
		}

		threshold := 0.01
		if math.Abs(ss.ScaleX-ss.TargetX) < threshold && math.Abs(ss.ScaleY-ss.TargetY) < threshold {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.RemoveComponent(components.SquashStretch)
	}
}

func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		ecs.World.Remove(e.Entity())
	}
}

// TriggerSquashStretch kicks an entity's sprite scale to (scaleX, scaleY)
// and lets it lerp back to normal. A retrigger restarts from the new kick.
func TriggerSquashStretch(entry *donburi.Entry, scaleX, scaleY float64) {
	data := components.SquashStretchData{
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		TargetX:   1.0,
		TargetY:   1.0,
		LerpSpeed: cfg.Landing.SquashLerpSpeed,
	}

	if entry.HasComponent(components.SquashStretch) {
		components.SquashStretch.SetValue(entry, data)
	} else {
		entry.AddComponent(components.SquashStretch)
		components.SquashStretch.SetValue(entry, data)
	}
}
