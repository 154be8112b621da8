package systems

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/gamemath"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions integrates velocities into positions, resolving against
// solid geometry and one-way platforms. Horizontal and vertical movement
// are resolved as separate sweeps, the standard AABB approach for tile
// worlds.
func UpdateCollisions(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)
	if t.Delta <= 0 {
		return
	}

	components.Physics.Each(ecs.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)
		if !phys.Simulated || !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry)

		moveHorizontal(obj.Object, phys, phys.VelX*t.Delta)
		moveVertical(obj.Object, phys, phys.VelY*t.Delta)
		obj.Update()

		if entry.HasComponent(components.Player) {
			recordSafePosition(entry, obj.Object, phys)
		}
	})
}

func moveHorizontal(obj *resolv.Object, phys *components.PhysicsData, dx float64) {
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			// Only solids the actor's body can actually run into; the cell
			// query also reports the floor underfoot.
			if solid.Y >= obj.Bottom() || solid.Y+solid.H <= obj.Y {
				continue
			}
			contact := check.ContactWithObject(solid).X()
			if (dx > 0 && contact >= 0 && contact < dx) || (dx < 0 && contact <= 0 && contact > dx) {
				dx = contact
				phys.VelX = 0
			}
		}
	}
	obj.X += dx
}

func moveVertical(obj *resolv.Object, phys *components.PhysicsData, dy float64) {
	dy = gamemath.ClampSpeed(dy, cfg.Physics.VerticalSpeedClamp)
	phys.OnGround = nil

	// Check one pixel further than the actual movement while moving down
	// so resting contact is re-detected every frame.
	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	if check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform); check != nil {
		if ground := pickGround(obj, check, dy); ground != nil {
			contact := check.ContactWithObject(ground).Y()
			if dy >= 0 {
				// Landing, or the +1px probe re-detecting resting contact.
				// The contact must lie inside the sweep; the cell query can
				// also report a floor farther away than this frame's motion.
				if contact <= checkDistance {
					dy = contact
					phys.OnGround = ground
					phys.VelY = 0
				}
			} else if contact <= 0 && contact >= dy {
				// Head bump. A positive contact here would be the floor the
				// actor just left, never a ceiling, and must not be applied
				// to upward movement.
				dy = contact
				phys.VelY = 0
			}
		}
	}

	obj.Y += dy
}

// pickGround chooses the blocking object for a vertical sweep. Moving up,
// only solids fully above the actor's head block; the cell query also
// returns the floor underfoot. Moving down, solids below the feet block
// and platforms block only a falling actor whose feet started above the
// platform top (one-way).
func pickGround(obj *resolv.Object, check *resolv.Collision, dy float64) *resolv.Object {
	if dy < 0 {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if solid.Y+solid.H <= obj.Y+1 {
				return solid
			}
		}
		return nil
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if solid.Y >= obj.Bottom()-1 {
			return solid
		}
	}
	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		if obj.Bottom() <= platform.Y+1 {
			return platform
		}
	}
	return nil
}

// overlapFirst returns the first object carrying one of the given tags
// whose box actually intersects the actor's box. The bare cell query can
// report objects up to a broadphase cell away, so triggers must not fire
// on it alone.
func overlapFirst(obj *resolv.Object, checkTags ...string) *resolv.Object {
	check := obj.Check(0, 0, checkTags...)
	if check == nil {
		return nil
	}
	for _, tag := range checkTags {
		for _, other := range check.ObjectsByTags(tag) {
			if boxesOverlap(obj, other) {
				return other
			}
		}
	}
	return nil
}

func boxesOverlap(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// recordSafePosition remembers the player's position whenever they stand
// on ground with no hazard below, so a water respawn has somewhere sane to
// return to.
func recordSafePosition(entry *donburi.Entry, obj *resolv.Object, phys *components.PhysicsData) {
	if phys.OnGround == nil {
		return
	}
	if check := obj.Check(0, 2, tags.ResolvWater); check != nil {
		return
	}

	player := components.Player.Get(entry)
	player.LastSafeX = obj.X
	player.LastSafeY = obj.Y
}
