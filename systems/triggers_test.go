package systems

import (
	"testing"

	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/leveldata"
	"github.com/mossrock/turnstone/systems/factory"
	"github.com/mossrock/turnstone/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateFood_AppliesPresetAndConsumes(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, _, obj := playerParts(player)

	food := factory.CreateFood(e, obj.X, obj.Y, cfg.SizeLarge)
	require.True(t, food.Valid())

	stepWorld(e, dt)
	UpdateFood(e)

	playerData := components.Player.Get(player)
	assert.Equal(t, cfg.SizeLarge, playerData.SizePreset)
	assert.Equal(t, 1, playerData.FoodEaten)
	assert.False(t, food.Valid(), "eaten food must be destroyed")

	// A second frame on the same spot must not double-eat.
	UpdateFood(e)
	assert.Equal(t, 1, playerData.FoodEaten)
}

func TestUpdateFood_RequiresActualOverlap(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, _, obj := playerParts(player)

	// Same broadphase cell, but the boxes never touch.
	food := factory.CreateFood(e, obj.X+obj.W+6, obj.Y, cfg.SizeLarge)

	stepWorld(e, dt)
	UpdateFood(e)

	assert.True(t, food.Valid(), "food out of reach must not be eaten")
	assert.Equal(t, 0, components.Player.Get(player).FoodEaten)
}

func TestUpdateWater_RespawnsAtLastSafePosition(t *testing.T) {
	e, player := groundedPlayer(0, 200, 100)
	loco, phys, obj := playerParts(player)

	// Establish a safe position on the floor.
	stepWorld(e, dt)
	stepWorld(e, dt)
	playerData := components.Player.Get(player)
	safeX, safeY := playerData.LastSafeX, playerData.LastSafeY

	// Drop the player into a pool elsewhere.
	factory.CreateWater(e, 300, 250, 100, 50)
	obj.X, obj.Y = 320, 260
	obj.Update()
	phys.VelY = 300

	UpdateWater(e)

	assert.Equal(t, safeX, obj.X)
	assert.Equal(t, safeY, obj.Y)
	assert.Equal(t, 0.0, phys.VelX)
	assert.Equal(t, 0.0, phys.VelY)
	assert.Equal(t, 0.0, loco.CoyoteTimer, "air state must be cleared on respawn")
	assert.False(t, loco.DoubleJumpUsed)
}

func TestUpdateWater_LeavesFrozenPlayerAlone(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	loco, phys, obj := playerParts(player)

	stepWorld(e, dt)
	stepWorld(e, dt)

	// Freeze the player the way an in-flight rotation does, then sweep
	// water across it. The transaction owns the position until it ends.
	require.True(t, StartRotation(e, 1))
	require.False(t, phys.Simulated)

	factory.CreateWater(e, obj.X-10, obj.Y-10, 60, 60)
	frozenX, frozenY := obj.X, obj.Y
	djBefore := loco.DoubleJumpUsed

	UpdateWater(e)

	assert.Equal(t, frozenX, obj.X, "frozen player must not be teleported")
	assert.Equal(t, frozenY, obj.Y)
	assert.Equal(t, djBefore, loco.DoubleJumpUsed, "frozen locomotion state must not be touched")
}

func TestUpdateBed_CompletesLevelAfterDelay(t *testing.T) {
	e, player := groundedPlayer(0, 200, 640)
	_, _, obj := playerParts(player)

	factory.CreateBed(e, obj.X, obj.Y, 24, 16)
	stepWorld(e, dt)

	levelEntry, _ := components.Level.First(e.World)
	level := components.Level.Get(levelEntry)

	// No interact press: nothing happens.
	setTimeStep(e, dt)
	UpdateBed(e)
	assert.False(t, level.Complete)

	pressAction(e, cfg.ActionInteract)
	setTimeStep(e, dt)
	UpdateBed(e)

	assert.True(t, level.Complete)
	assert.True(t, components.Player.Get(player).Sleeping)
	assert.False(t, components.Locomotion.Get(player).Enabled)
	assert.False(t, IsLevelComplete(e), "exit delay must still be pending")

	frames := int(cfg.Level.SleepDelay/dt) + 2
	for i := 0; i < frames; i++ {
		setTimeStep(e, dt)
		UpdateBed(e)
	}
	assert.True(t, IsLevelComplete(e))
}

func TestCreateLevel_RegistersGeometry(t *testing.T) {
	e := newTestECS()

	bed := leveldata.Rect{X: 500, Y: 180, W: 24, H: 16}
	level := factory.CreateLevel(e, &leveldata.Level{
		Name:      "geometry",
		MapWidth:  640,
		MapHeight: 360,
		Walls:     []leveldata.Rect{{X: 0, Y: 200, W: 640, H: 16}},
		Platforms: []leveldata.Platform{{
			Rect:    leveldata.Rect{X: 100, Y: 150, W: 48, H: 8},
			TravelY: -60,
			Period:  2,
		}},
		Water: []leveldata.Rect{{X: 200, Y: 340, W: 100, H: 20}},
		Food:  []leveldata.Food{{X: 50, Y: 180, Preset: "large"}},
		Bed:   &bed,
		Spawn: leveldata.Point{X: 320, Y: 100},
	})

	data := components.Level.Get(level)
	assert.Equal(t, "geometry", data.Name)
	assert.Len(t, data.Geometry, 5, "every piece of level geometry must be registered for rotation")
	assert.Equal(t, 320.0, data.SpawnX)

	// The one-way platform must carry its oscillation data.
	platformEntry, ok := tags.FloatingPlatform.First(e.World)
	require.True(t, ok)
	tw := components.Tween.Get(platformEntry)
	assert.Equal(t, 0.0, tw.AxisX)
	assert.Equal(t, -1.0, tw.AxisY)
}
