package systems

import (
	"github.com/mossrock/turnstone/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs every resolv object's cell placement after all
// movement for the frame is done.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(entry *donburi.Entry) {
		components.Object.Get(entry).Update()
	})
}
