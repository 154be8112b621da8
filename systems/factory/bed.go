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

func CreateBed(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	bed := archetypes.Bed.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBed)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = bed
	components.Object.SetValue(bed, components.ObjectData{Object: obj})

	components.Sprite.SetValue(bed, components.SpriteData{
		W:      w,
		H:      h,
		Color:  cfg.BedColor,
		ScaleX: 1,
		ScaleY: 1,
	})

	addToSpace(ecs, obj)

	return bed
}
