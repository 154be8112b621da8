package systems

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBed handles the level exit: interacting while overlapping the bed
// puts the player to sleep, starts the music fade and arms the completion
// timer; the scene leaves once it expires.
func UpdateBed(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	if level.Complete {
		level.CompleteTimer -= t.Unscaled
		return
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Sleeping {
		return
	}
	phys := components.Physics.Get(playerEntry)
	if !phys.Simulated {
		return
	}

	in := getOrCreateInput(ecs)
	if !GetAction(in, cfg.ActionInteract).JustPressed {
		return
	}

	playerObj := components.Object.Get(playerEntry)
	if overlapFirst(playerObj.Object, tags.ResolvBed) == nil {
		return
	}

	player.Sleeping = true
	components.Locomotion.Get(playerEntry).Enabled = false
	phys.VelX = 0

	EnqueueSFX(ecs.World, cfg.SoundSleep)
	StopMusicWithFade(ecs)

	level.Complete = true
	level.CompleteTimer = cfg.Level.SleepDelay
}

// IsLevelComplete reports whether the level has finished and its exit
// delay has elapsed.
func IsLevelComplete(ecs *ecs.ECS) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	level := components.Level.Get(levelEntry)
	return level.Complete && level.CompleteTimer <= 0
}
