package factory

import (
	"github.com/mossrock/turnstone/archetypes"
	"github.com/mossrock/turnstone/components"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWater(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	water := archetypes.Water.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvWater)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = water
	components.Object.SetValue(water, components.ObjectData{Object: obj})

	addToSpace(ecs, obj)

	return water
}
