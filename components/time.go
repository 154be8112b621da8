package components

import "github.com/yohamta/donburi"

// TimeData is the singleton frame clock. Delta is the scaled step used for
// physics integration; Unscaled ignores the time scale and drives the
// locomotion and rotation timers, which keep ticking while paused.
type TimeData struct {
	Scale    float64 // 0 while paused, 1 otherwise
	Delta    float64 // seconds, scaled
	Unscaled float64 // seconds, unscaled
}

var Time = donburi.NewComponentType[TimeData]()
