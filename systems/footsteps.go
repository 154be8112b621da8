package systems

import (
	"math"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFootsteps plays a footstep sound every fixed stretch of ground
// covered. It keys off the debounced grounded signal, so crossing a
// one-frame gap in the floor doesn't cut the footstep rhythm.
func UpdateFootsteps(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)
	if t.Delta <= 0 {
		return
	}

	components.Locomotion.Each(ecs.World, func(entry *donburi.Entry) {
		loco := components.Locomotion.Get(entry)
		phys := components.Physics.Get(entry)

		if !entry.HasComponent(components.Footstep) {
			return
		}
		steps := components.Footstep.Get(entry)

		speed := math.Abs(phys.VelX)
		if !loco.GroundedStable || speed < cfg.Player.FootstepMinSpeed {
			steps.Accum = 0
			return
		}

		steps.Accum += speed * t.Delta
		if steps.Accum >= cfg.Player.FootstepInterval {
			steps.Accum = 0
			EnqueueSFX(ecs.World, cfg.SoundFootstep)
		}
	})
}
