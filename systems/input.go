package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and any connected standard gamepads into
// the singleton Input component. Edge detection (just pressed / released)
// is derived by diffing against the previous frame's buffer, so every
// other system reads a stable snapshot for the whole tick.
func UpdateInput(ecs *ecs.ECS) {
	in := getOrCreateInput(ecs)

	in.Previous = in.Current

	gamepads := ebiten.AppendGamepadIDs(nil)

	for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
		binding := cfg.Input.Bindings[action]

		down := false
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		if !down {
			for _, id := range gamepads {
				if !ebiten.IsStandardGamepadLayoutAvailable(id) {
					continue
				}
				for _, button := range binding.StandardGamepadButtons {
					if ebiten.IsStandardGamepadButtonPressed(id, button) {
						down = true
						break
					}
				}
				if down {
					break
				}
			}
		}

		in.Current[action] = down
	}

	in.Axis = readAxis(in, gamepads)
}

// readAxis merges digital left/right input with the analog stick. Keyboard
// and d-pad win over the stick when both are held.
func readAxis(in *components.InputData, gamepads []ebiten.GamepadID) float64 {
	axis := 0.0
	if in.Current[cfg.ActionMoveLeft] {
		axis -= 1
	}
	if in.Current[cfg.ActionMoveRight] {
		axis += 1
	}
	if axis != 0 {
		return axis
	}

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if math.Abs(v) > cfg.Input.AnalogDeadzone {
			return v
		}
	}

	return 0
}

// GetAction reports the state of a single action for this frame.
func GetAction(in *components.InputData, action cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      in.Current[action],
		JustPressed:  in.Current[action] && !in.Previous[action],
		JustReleased: !in.Current[action] && in.Previous[action],
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if _, ok := components.Input.First(ecs.World); !ok {
		ecs.World.Entry(ecs.World.Create(components.Input))
	}

	ent, _ := components.Input.First(ecs.World)
	return components.Input.Get(ent)
}
