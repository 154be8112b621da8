package systems

import (
	"github.com/mossrock/turnstone/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances floating platform tweens and reprojects each
// platform onto origin + axis*offset. Platforms hold still while a
// rotation transaction is in flight; their origin and axis are rotated at
// completion and motion resumes from the equivalent point of the cycle.
func UpdatePlatforms(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)
	if t.Delta <= 0 {
		return
	}
	if rot, ok := components.Rotation.First(ecs.World); ok {
		if components.Rotation.Get(rot).Phase == components.RotationRotating {
			return
		}
	}

	components.Tween.Each(ecs.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		obj := components.Object.Get(entry)

		offset, _, _ := tw.Seq.Update(float32(t.Delta))
		obj.X = tw.OriginX + tw.AxisX*float64(offset)
		obj.Y = tw.OriginY + tw.AxisY*float64(offset)
		obj.Update()
	})
}
