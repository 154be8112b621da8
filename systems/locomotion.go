package systems

import (
	"math"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/events"
	"github.com/mossrock/turnstone/gamemath"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion advances every actor's movement state machine: ground
// probing, grounded debouncing, coyote time, jump buffering, jump
// resolution, facing and fall tracking. It runs after input polling and
// before the physics write-back, so the velocities it sets take effect
// this frame.
//
// All of its timers count in unscaled seconds. The probe reads the
// collision space directly instead of trusting last frame's contact, so a
// platform moving out from under an actor is noticed immediately.
func UpdateLocomotion(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)
	in := getOrCreateInput(ecs)

	components.Locomotion.Each(ecs.World, func(entry *donburi.Entry) {
		loco := components.Locomotion.Get(entry)
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		if !loco.Enabled || !phys.Simulated {
			return
		}

		axis := 0.0
		if entry.HasComponent(tags.Player) {
			axis = in.Axis
		}
		loco.MoveInput = axis

		wasStable := loco.GroundedStable

		raw := probeGround(obj, loco)

		// Debounce: raw=true refreshes stable instantly and rearms the
		// hold timer. Stable only drops after the timer runs out.
		if raw {
			loco.GroundedRaw = true
			loco.GroundedStable = true
			loco.HoldTimer = cfg.Player.GroundedHoldTime
		} else {
			loco.GroundedRaw = false
			if loco.GroundedStable {
				loco.HoldTimer -= t.Unscaled
				if loco.HoldTimer <= 0 {
					loco.HoldTimer = 0
					loco.GroundedStable = false
				}
			}
		}

		// The landing check happens before jump resolution so a buffered
		// jump firing on the landing frame still reports the landing.
		if !wasStable && loco.GroundedStable {
			events.LandedEvent.Publish(ecs.World, events.Landed{
				Entry:         entry,
				FallDistance:  math.Max(0, obj.Y-loco.FallStartY),
				PeakFallSpeed: loco.PeakFallSpeed,
			})
		}

		if loco.GroundedRaw {
			loco.CoyoteTimer = cfg.Player.CoyoteTime
			loco.DoubleJumpUsed = false
			loco.FallTracking = false
		} else {
			loco.CoyoteTimer = math.Max(0, loco.CoyoteTimer-t.Unscaled)
		}

		if entry.HasComponent(tags.Player) && GetAction(in, cfg.ActionJump).JustPressed {
			loco.JumpBufferTimer = cfg.Player.JumpBufferTime
		} else {
			loco.JumpBufferTimer = math.Max(0, loco.JumpBufferTimer-t.Unscaled)
		}

		// Jump resolution. A grounded (or coyote) jump always wins over
		// spending the double jump.
		if loco.JumpBufferTimer > 0 {
			switch {
			case loco.CoyoteTimer > 0:
				fireJump(ecs.World, entry, loco, phys)
			case cfg.Player.AllowDoubleJump && !loco.DoubleJumpUsed:
				loco.DoubleJumpUsed = true
				fireJump(ecs.World, entry, loco, phys)
			}
		}

		// Fall tracking arms on the first airborne frame, whether the
		// actor jumped, walked off or started out in the air.
		if !loco.GroundedRaw && !loco.FallTracking {
			loco.FallTracking = true
			loco.FallStartY = obj.Y
			loco.PeakFallSpeed = 0
		}
		if !loco.GroundedRaw && phys.VelY > loco.PeakFallSpeed {
			loco.PeakFallSpeed = phys.VelY
		}

		updateFacing(loco, phys, axis)
	})
}

// probeGround casts the actor's collision box a short distance downward.
func probeGround(obj *components.ObjectData, loco *components.LocomotionData) bool {
	depth := loco.ProbeDepth
	if depth <= 0 {
		depth = cfg.Player.GroundProbeDepth
	}
	return groundContact(obj.Object, depth)
}

// groundContact reports whether solid or platform geometry lies within
// depth pixels under the actor's feet. Check is a cell query: it reports
// everything sharing a broadphase cell with the swept box, so candidates
// are narrowed to boxes whose top edge actually lies within reach under
// the actor's horizontal span. The feet-above condition is also what makes
// one-way platforms one-way here.
func groundContact(obj *resolv.Object, depth float64) bool {
	check := obj.Check(0, depth, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		return false
	}

	bottom := obj.Bottom()
	for _, tag := range []string{tags.ResolvSolid, tags.ResolvPlatform} {
		for _, ground := range check.ObjectsByTags(tag) {
			if ground.Y < bottom-1 || ground.Y > bottom+depth {
				continue
			}
			if ground.X < obj.X+obj.W && ground.X+ground.W > obj.X {
				return true
			}
		}
	}
	return false
}

func fireJump(w donburi.World, entry *donburi.Entry, loco *components.LocomotionData, phys *components.PhysicsData) {
	phys.VelY = -cfg.Player.JumpSpeed
	phys.OnGround = nil

	// Leaving the ground is immediate for both signals so a jump can't
	// double-fire off the buffered input, and FX consumers never see a
	// grounded jump frame.
	loco.GroundedRaw = false
	loco.GroundedStable = false
	loco.HoldTimer = 0
	loco.CoyoteTimer = 0
	loco.JumpBufferTimer = 0

	events.JumpedEvent.Publish(w, events.Jumped{Entry: entry})
}

// updateFacing keeps the facing sticky: it only changes on a clear signal.
// Grounded actors face their input; airborne actors face their velocity,
// falling back to input when drifting slowly.
func updateFacing(loco *components.LocomotionData, phys *components.PhysicsData, axis float64) {
	dz := cfg.Player.FacingDeadzone
	switch {
	case loco.GroundedRaw:
		if math.Abs(axis) > dz {
			loco.Facing = gamemath.Sign(axis)
		}
	case math.Abs(phys.VelX) > dz*cfg.Player.MaxSpeed:
		loco.Facing = gamemath.Sign(phys.VelX)
	case math.Abs(axis) > dz:
		loco.Facing = gamemath.Sign(axis)
	}
}
