package systems

import (
	"math"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const inputEpsilon = 0.01

// UpdatePhysics applies acceleration toward the desired horizontal speed
// and gravity to every simulated actor. Velocities are pixels per second;
// the collision system integrates them.
func UpdatePhysics(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)
	if t.Delta <= 0 {
		return
	}

	components.Physics.Each(ecs.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)
		if !phys.Simulated {
			return
		}

		if entry.HasComponent(components.Locomotion) {
			loco := components.Locomotion.Get(entry)
			target := loco.MoveInput * phys.MaxSpeed
			accel := cfg.Player.Acceleration
			if math.Abs(loco.MoveInput) <= inputEpsilon {
				accel = cfg.Player.Deceleration
				if !loco.GroundedRaw {
					accel *= cfg.Player.AirDecelFactor
				}
			}
			phys.VelX = gamemath.Approach(phys.VelX, target, accel*t.Delta)
		}

		g := phys.Gravity
		if phys.VelY > 0 {
			// Falling: heavier gravity for a snappier arc.
			g *= cfg.Player.FallGravityMult
		}
		phys.VelY = math.Min(phys.VelY+g*t.Delta, cfg.Player.MaxFallSpeed)
	})
}
