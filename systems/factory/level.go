package factory

import (
	"github.com/mossrock/turnstone/archetypes"
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds all level entities from parsed TMX data and records
// every piece of level geometry on the level root, so the rotation
// transaction knows what turns with the world.
func CreateLevel(ecs *ecs.ECS, data *leveldata.Level) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levelData := components.LevelData{
		Name:   data.Name,
		Width:  data.MapWidth,
		Height: data.MapHeight,
		SpawnX: data.Spawn.X,
		SpawnY: data.Spawn.Y,
	}

	for _, w := range data.Walls {
		wall := CreateWall(ecs, w.X, w.Y, w.W, w.H)
		levelData.Geometry = append(levelData.Geometry, components.Object.Get(wall).Object)
	}

	for _, p := range data.Platforms {
		platform := CreateFloatingPlatform(ecs, p.X, p.Y, p.W, p.H, p.TravelX, p.TravelY, p.Period)
		levelData.Geometry = append(levelData.Geometry, components.Object.Get(platform).Object)
	}

	for _, w := range data.Water {
		water := CreateWater(ecs, w.X, w.Y, w.W, w.H)
		levelData.Geometry = append(levelData.Geometry, components.Object.Get(water).Object)
	}

	for _, f := range data.Food {
		food := CreateFood(ecs, f.X, f.Y, presetByName(f.Preset))
		levelData.Geometry = append(levelData.Geometry, components.Object.Get(food).Object)
	}

	if data.Bed != nil {
		bed := CreateBed(ecs, data.Bed.X, data.Bed.Y, data.Bed.W, data.Bed.H)
		levelData.Geometry = append(levelData.Geometry, components.Object.Get(bed).Object)
	}

	components.Level.SetValue(level, levelData)

	return level
}

func presetByName(name string) cfg.SizePresetID {
	switch name {
	case "small":
		return cfg.SizeSmall
	case "large":
		return cfg.SizeLarge
	default:
		return cfg.SizeNormal
	}
}
