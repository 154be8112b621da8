package factory

import (
	"github.com/mossrock/turnstone/archetypes"
	"github.com/mossrock/turnstone/components"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera already centered on (x, y) so the first
// frame does not ease in from the level origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: dmath.Vec2{X: x, Y: y},
	})
}
