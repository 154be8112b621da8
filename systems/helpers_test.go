package systems

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/leveldata"
	"github.com/mossrock/turnstone/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a world with a collision space but no level content.
func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	return e
}

// groundedPlayer builds a world with a floor strip and a player standing
// on it. The floor spans x in [floorX, floorX+floorW) at y=floorY.
func groundedPlayer(floorX, floorY, floorW float64) (*ecs.ECS, *donburi.Entry) {
	e := newTestECS()

	level := factory.CreateLevel(e, &leveldata.Level{
		Name:      "test",
		MapWidth:  640,
		MapHeight: 360,
		Walls:     []leveldata.Rect{{X: floorX, Y: floorY, W: floorW, H: 16}},
		Spawn:     leveldata.Point{X: floorX + floorW/2, Y: floorY - cfg.Player.CollisionHeight},
		HasSpawn:  true,
	})
	_ = level

	player := factory.CreatePlayer(e,
		floorX+floorW/2,
		floorY-cfg.Player.CollisionHeight,
	)
	RegisterActor(e, player)
	return e, player
}

// setTimeStep pins the frame clock to a fixed dt for both scaled and
// unscaled time.
func setTimeStep(e *ecs.ECS, dt float64) {
	t := GetOrCreateTime(e)
	t.Scale = 1
	t.Delta = dt
	t.Unscaled = dt
}

// pressAction simulates a fresh press of an action this frame.
func pressAction(e *ecs.ECS, action cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current[action] = true
}

// releaseActions clears all pressed actions, keeping edge state coherent.
func releaseActions(e *ecs.ECS) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

func setAxis(e *ecs.ECS, axis float64) {
	getOrCreateInput(e).Axis = axis
}

// stepWorld runs one simulation frame the way the world scene orders it,
// minus the engine-bound systems.
func stepWorld(e *ecs.ECS, dt float64) {
	setTimeStep(e, dt)
	UpdatePlatforms(e)
	UpdateLocomotion(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateRotation(e)
}

func playerParts(player *donburi.Entry) (*components.LocomotionData, *components.PhysicsData, *components.ObjectData) {
	return components.Locomotion.Get(player),
		components.Physics.Get(player),
		components.Object.Get(player)
}

// completeRotation steps an in-flight transaction until it leaves the
// Rotating phase, bounded so a stuck tween ends the loop instead of
// hanging the test.
func completeRotation(e *ecs.ECS) {
	rot := GetOrCreateRotation(e)
	for i := 0; i < 600 && rot.Phase == components.RotationRotating; i++ {
		setTimeStep(e, 1.0/60.0)
		UpdateRotation(e)
	}
}

// skipCooldown ticks the transaction controller past its cooldown.
func skipCooldown(e *ecs.ECS) {
	rot := GetOrCreateRotation(e)
	for i := 0; i < 600 && rot.Phase == components.RotationCooldown; i++ {
		setTimeStep(e, 1.0/60.0)
		UpdateRotation(e)
	}
}

// spawnExtraActor creates a minimal registered rotation participant.
func spawnExtraActor(e *ecs.ECS, x, y float64) *donburi.Entry {
	actor := factory.CreatePlayer(e, x, y)
	RegisterActor(e, actor)
	return actor
}
