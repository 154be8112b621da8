package factory

import (
	"github.com/mossrock/turnstone/archetypes"
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const foodSize = 12.0

func CreateFood(ecs *ecs.ECS, x, y float64, preset cfg.SizePresetID) *donburi.Entry {
	food := archetypes.Food.Spawn(ecs)

	obj := resolv.NewObject(x, y, foodSize, foodSize, tags.ResolvFood)
	obj.SetShape(resolv.NewRectangle(0, 0, foodSize, foodSize))
	obj.Data = food
	components.Object.SetValue(food, components.ObjectData{Object: obj})

	components.Food.SetValue(food, components.FoodData{TargetPreset: preset})
	components.Sprite.SetValue(food, components.SpriteData{
		W:      foodSize,
		H:      foodSize,
		Color:  cfg.FoodColor,
		ScaleX: 1,
		ScaleY: 1,
	})

	addToSpace(ecs, obj)

	return food
}
