package systems

import (
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTime advances the singleton frame clock. Must run before every
// other system. The base step is the fixed tick duration; Delta is scaled
// by the current time scale (zero while paused), Unscaled is not.
func UpdateTime(ecs *ecs.ECS) {
	t := GetOrCreateTime(ecs)
	base := 1.0 / float64(cfg.C.TickRate)
	t.Unscaled = base
	t.Delta = base * t.Scale
}

// GetOrCreateTime returns the singleton Time component, creating if needed.
func GetOrCreateTime(ecs *ecs.ECS) *components.TimeData {
	if _, ok := components.Time.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Time))
		components.Time.SetValue(ent, components.TimeData{Scale: 1})
	}

	ent, _ := components.Time.First(ecs.World)
	return components.Time.Get(ent)
}

// SetTimeScale sets the global time scale (0 pauses scaled time).
func SetTimeScale(ecs *ecs.ECS, scale float64) {
	GetOrCreateTime(ecs).Scale = scale
}
