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

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags("character", tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		SpawnX:     x,
		SpawnY:     y,
		LastSafeX:  x,
		LastSafeY:  y,
		SizePreset: cfg.SizeNormal,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:   cfg.Player.Gravity,
		MaxSpeed:  cfg.Player.MaxSpeed,
		Simulated: true,
	})
	components.Locomotion.SetValue(player, components.LocomotionData{
		Enabled:    true,
		Facing:     1,
		FallStartY: y, // an airborne spawn measures its first fall from here
	})
	components.Sprite.SetValue(player, components.SpriteData{
		W:      cfg.Player.CollisionWidth,
		H:      cfg.Player.CollisionHeight,
		Color:  cfg.PlayerColor,
		ScaleX: 1,
		ScaleY: 1,
	})

	addToSpace(ecs, obj)

	return player
}
