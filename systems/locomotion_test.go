package systems

import (
	"testing"

	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const dt = 1.0 / 60.0

func TestGroundProbe_DetectsFloor(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, _, _ := playerParts(player)

	stepWorld(e, dt)

	assert.True(t, loco.GroundedRaw)
	assert.True(t, loco.GroundedStable)
}

func TestGroundProbe_IgnoresFloorBeyondReach(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, phys, obj := playerParts(player)

	// Hovering inside the floor's broadphase cell but well beyond the
	// probe depth. The cell query alone would report contact here.
	obj.Y = 200 - cfg.Player.CollisionHeight - 6
	obj.Update()
	loco.CoyoteTimer = 0
	loco.DoubleJumpUsed = true

	pressAction(e, cfg.ActionJump)
	setTimeStep(e, dt)
	UpdateLocomotion(e)

	assert.False(t, loco.GroundedRaw, "a floor 6px away is not contact")
	assert.Equal(t, 0.0, phys.VelY, "no jump may fire from thin air")
	assert.Greater(t, loco.JumpBufferTimer, 0.0, "the press must be buffered instead")
}

func TestGroundedStable_SurvivesShortGap(t *testing.T) {
	e, player := groundedPlayer(0, 200, 100)
	loco, _, obj := playerParts(player)

	stepWorld(e, dt)
	require.True(t, loco.GroundedStable)

	// Teleport off the ledge; raw drops immediately, stable holds for the
	// configured window.
	obj.X = 400
	obj.Update()

	gapFrames := int(cfg.Player.GroundedHoldTime/dt) - 1
	for i := 0; i < gapFrames; i++ {
		stepWorld(e, dt)
		assert.False(t, loco.GroundedRaw, "frame %d", i)
		assert.True(t, loco.GroundedStable, "stable dropped too early, frame %d", i)
	}

	// Past the hold window the stable signal gives up too.
	for i := 0; i < 4; i++ {
		stepWorld(e, dt)
	}
	assert.False(t, loco.GroundedStable)
}

func TestGroundedStable_RearmsEachContact(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, _, obj := playerParts(player)

	stepWorld(e, dt)
	require.True(t, loco.GroundedStable)

	// Lift, fall back, lift again: the hold timer must restart from full
	// on every re-contact.
	obj.Y -= 5
	obj.Update()
	stepWorld(e, dt)
	assert.True(t, loco.GroundedStable)

	for loco.GroundedRaw == false {
		stepWorld(e, dt)
	}

	obj.Y -= 5
	obj.Update()
	gapFrames := int(cfg.Player.GroundedHoldTime/dt) - 1
	for i := 0; i < gapFrames; i++ {
		setTimeStep(e, dt)
		UpdateLocomotion(e)
		assert.True(t, loco.GroundedStable, "timer did not rearm, frame %d", i)
		obj.Y -= 1 // keep it airborne
		obj.Update()
	}
}

func TestJump_FromGround(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, phys, _ := playerParts(player)

	stepWorld(e, dt)
	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)

	// Gravity for the frame applies after the jump, so allow one step.
	assert.InDelta(t, -cfg.Player.JumpSpeed, phys.VelY, cfg.Player.Gravity*dt+0.01)
	assert.Less(t, phys.VelY, 0.0)
	assert.False(t, loco.GroundedRaw)
	assert.False(t, loco.GroundedStable)
	assert.False(t, loco.DoubleJumpUsed, "ground jump must not spend the double jump")
}

func TestJump_ClearsTheFloor(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, phys, obj := playerParts(player)

	stepWorld(e, dt)
	bottomBefore := obj.Bottom()

	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)

	// The floor the actor just left must not read as a ceiling and eat the
	// jump during collision resolution.
	assert.Less(t, phys.VelY, 0.0, "jump velocity must survive the collision sweep")
	assert.Less(t, obj.Bottom(), bottomBefore, "the actor must rise, not sink through the floor")
}

func TestCoyoteJump_WithinWindow(t *testing.T) {
	e, player := groundedPlayer(0, 200, 100)
	loco, phys, obj := playerParts(player)

	stepWorld(e, dt)
	require.True(t, loco.GroundedRaw)

	// Walk off the ledge.
	obj.X = 400
	obj.Update()
	releaseActions(e)

	// A few frames into the air, still inside the coyote window.
	airFrames := int(cfg.Player.CoyoteTime/dt) - 2
	for i := 0; i < airFrames; i++ {
		stepWorld(e, dt)
	}
	require.False(t, loco.GroundedRaw)
	require.Greater(t, loco.CoyoteTimer, 0.0)

	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)

	assert.Less(t, phys.VelY, 0.0)
	assert.False(t, loco.DoubleJumpUsed, "coyote jump must not spend the double jump")
}

func TestCoyoteExpired_FallsBackToDoubleJump(t *testing.T) {
	e, player := groundedPlayer(0, 200, 100)
	loco, phys, obj := playerParts(player)

	stepWorld(e, dt)
	obj.X = 400
	obj.Y = 50 // high up so it stays airborne long enough
	obj.Update()
	releaseActions(e)

	expireFrames := int(cfg.Player.CoyoteTime/dt) + 2
	for i := 0; i < expireFrames; i++ {
		stepWorld(e, dt)
	}
	require.Equal(t, 0.0, loco.CoyoteTimer)

	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)

	assert.Less(t, phys.VelY, 0.0)
	assert.True(t, loco.DoubleJumpUsed)
}

func TestDoubleJump_OnlyOncePerAirtime(t *testing.T) {
	e, player := groundedPlayer(0, 200, 100)
	loco, phys, obj := playerParts(player)

	stepWorld(e, dt)
	obj.X = 400
	obj.Y = 30
	obj.Update()
	releaseActions(e)

	for i := 0; i < int(cfg.Player.CoyoteTime/dt)+2; i++ {
		stepWorld(e, dt)
	}

	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)
	require.True(t, loco.DoubleJumpUsed)

	// Let the jump velocity decay a little, then try again.
	releaseActions(e)
	stepWorld(e, dt)
	velBefore := phys.VelY
	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)

	assert.Greater(t, phys.VelY, velBefore, "second air jump must not fire")
}

func TestJumpBuffer_FiresOnLanding(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, phys, obj := playerParts(player)

	// Airborne just above the floor, falling, with no air jumps left.
	obj.Y = 200 - cfg.Player.CollisionHeight - 6
	obj.Update()
	loco.DoubleJumpUsed = true
	loco.CoyoteTimer = 0
	phys.VelY = 200

	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)
	require.Greater(t, loco.JumpBufferTimer, 0.0, "press in the air must be buffered")

	releaseActions(e)
	jumped := false
	for i := 0; i < int(cfg.Player.JumpBufferTime/dt); i++ {
		stepWorld(e, dt)
		if phys.VelY < 0 {
			jumped = true
			break
		}
	}
	assert.True(t, jumped, "buffered jump should fire on touchdown")
}

func TestJumpBuffer_ExpiresUnused(t *testing.T) {
	e, player := groundedPlayer(0, 200, 100)
	loco, _, obj := playerParts(player)

	stepWorld(e, dt)
	obj.X = 400
	obj.Y = 50
	obj.Update()

	for i := 0; i < int(cfg.Player.CoyoteTime/dt)+2; i++ {
		stepWorld(e, dt)
	}
	loco.DoubleJumpUsed = true

	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)
	require.Greater(t, loco.JumpBufferTimer, 0.0)

	releaseActions(e)
	for i := 0; i < int(cfg.Player.JumpBufferTime/dt)+2; i++ {
		stepWorld(e, dt)
	}
	assert.Equal(t, 0.0, loco.JumpBufferTimer)
}

func TestLanded_FiresOnceWithFallDistance(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, phys, obj := playerParts(player)

	var landings []events.Landed
	events.LandedEvent.Subscribe(e.World, func(w donburi.World, ev events.Landed) {
		landings = append(landings, ev)
	})

	// Drop from 80px above the floor.
	dropHeight := 80.0
	obj.Y = 200 - cfg.Player.CollisionHeight - dropHeight
	obj.Update()
	stepWorld(e, dt) // leaves the ground, records the fall start

	for i := 0; i < 240; i++ {
		stepWorld(e, dt)
		events.Process(e.World)
	}

	require.Len(t, landings, 1, "landing must be reported exactly once")
	assert.InDelta(t, dropHeight, landings[0].FallDistance, 2.0)
	assert.Greater(t, landings[0].PeakFallSpeed, 0.0)
	assert.Equal(t, player, landings[0].Entry)
	_ = phys
}

func TestJumped_EventPublished(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_ = player

	var jumps int
	events.JumpedEvent.Subscribe(e.World, func(w donburi.World, ev events.Jumped) {
		jumps++
	})

	stepWorld(e, dt)
	pressAction(e, cfg.ActionJump)
	stepWorld(e, dt)
	events.Process(e.World)

	assert.Equal(t, 1, jumps)
}

func TestFacing_StickyThroughIdle(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, _, _ := playerParts(player)

	setAxis(e, 1)
	stepWorld(e, dt)
	assert.Equal(t, 1.0, loco.Facing)

	setAxis(e, 0)
	for i := 0; i < 10; i++ {
		stepWorld(e, dt)
	}
	assert.Equal(t, 1.0, loco.Facing, "facing must not reset when input stops")

	setAxis(e, -1)
	stepWorld(e, dt)
	assert.Equal(t, -1.0, loco.Facing)
}

func TestMove_AcceleratesTowardMaxSpeed(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, phys, _ := playerParts(player)

	setAxis(e, 1)
	for i := 0; i < 60; i++ {
		stepWorld(e, dt)
	}

	assert.InDelta(t, cfg.Player.MaxSpeed, phys.VelX, 1.0)
}
