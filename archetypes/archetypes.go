package archetypes

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Locomotion,
		components.Sprite,
		components.Footstep,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Food = newArchetype(
		tags.Food,
		components.Food,
		components.Object,
		components.Sprite,
	)
	Bed = newArchetype(
		tags.Bed,
		components.Bed,
		components.Object,
		components.Sprite,
	)
	Water = newArchetype(
		tags.Water,
		components.Water,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Rotation = newArchetype(
		components.Rotation,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
