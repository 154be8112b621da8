package systems

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFood eats any food the player overlaps: the food's size preset is
// applied, the pickup disappears and stops participating in rotations. A
// frozen player (mid-rotation) eats nothing.
func UpdateFood(ecs *ecs.ECS) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if !components.Physics.Get(playerEntry).Simulated {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	check := playerObj.Check(0, 0, tags.ResolvFood)
	if check == nil {
		return
	}

	var eaten []*donburi.Entry
	for _, foodObj := range check.ObjectsByTags(tags.ResolvFood) {
		if !boxesOverlap(playerObj.Object, foodObj) {
			continue
		}
		foodEntry, ok := foodObj.Data.(*donburi.Entry)
		if !ok || !foodEntry.Valid() {
			continue
		}
		food := components.Food.Get(foodEntry)
		if food.Eaten {
			continue
		}
		food.Eaten = true

		ApplySizePreset(playerEntry, food.TargetPreset)
		components.Player.Get(playerEntry).FoodEaten++
		EnqueueSFX(ecs.World, cfg.SoundEat)

		removeFromSpace(ecs.World, foodObj)
		removeFromGeometry(ecs.World, foodObj)
		eaten = append(eaten, foodEntry)
	}

	for _, e := range eaten {
		ecs.World.Remove(e.Entity())
	}
}

func removeFromSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
}

func removeFromGeometry(w donburi.World, obj *resolv.Object) {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	for i, g := range level.Geometry {
		if g == obj {
			level.Geometry = append(level.Geometry[:i], level.Geometry[i+1:]...)
			return
		}
	}
}
