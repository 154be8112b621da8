package factory

import (
	"math"

	"github.com/mossrock/turnstone/archetypes"
	"github.com/mossrock/turnstone/components"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFloatingPlatform builds a one-way platform oscillating from its
// start position along (travelX, travelY) and back, period seconds per leg.
// The offset is tweened along a unit axis so the rotation transaction can
// re-aim the axis without touching the tween itself.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travelX, travelY, period float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	dist := math.Hypot(travelX, travelY)
	axisX, axisY := 0.0, -1.0
	if dist > 0 {
		axisX = travelX / dist
		axisY = travelY / dist
	}

	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(dist), float32(period), ease.InOutQuad),
		gween.New(float32(dist), 0, float32(period), ease.InOutQuad),
	)
	tw.SetLoop(-1)
	components.Tween.SetValue(platform, components.TweenData{
		Seq:     tw,
		OriginX: x,
		OriginY: y,
		AxisX:   axisX,
		AxisY:   axisY,
	})

	addToSpace(ecs, obj)

	return platform
}
