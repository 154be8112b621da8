package systems

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWater respawns the player at the last safe grounded position when
// they touch water. Velocity and the in-air locomotion state are cleared
// so the respawn is a clean restart, not a continuation of the fall.
func UpdateWater(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	phys := components.Physics.Get(playerEntry)
	if !phys.Simulated {
		// Frozen mid-rotation; the transaction owns the position until it
		// completes.
		return
	}

	playerObj := components.Object.Get(playerEntry)
	if overlapFirst(playerObj.Object, tags.ResolvWater) == nil {
		return
	}

	player := components.Player.Get(playerEntry)
	loco := components.Locomotion.Get(playerEntry)

	playerObj.X = player.LastSafeX
	playerObj.Y = player.LastSafeY
	playerObj.Update()

	phys.VelX = 0
	phys.VelY = 0
	phys.OnGround = nil

	loco.GroundedRaw = false
	loco.GroundedStable = false
	loco.HoldTimer = 0
	loco.CoyoteTimer = 0
	loco.JumpBufferTimer = 0
	loco.DoubleJumpUsed = false
	loco.FallTracking = false
	loco.FallStartY = playerObj.Y
	loco.PeakFallSpeed = 0

	EnqueueSFX(ecs.World, cfg.SoundSplash)
	TriggerScreenShake(ecs.World, cfg.Camera.SplashShakeIntensity, cfg.Camera.SplashShakeFrames)
}
