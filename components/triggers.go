package components

import (
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi"
)

// FoodData marks an edible pickup; eating it applies TargetPreset to the
// player's size.
type FoodData struct {
	TargetPreset cfg.SizePresetID
	Eaten        bool
}

var Food = donburi.NewComponentType[FoodData]()

// BedData marks the level exit. Interacting while overlapping puts the
// player to sleep and completes the level.
type BedData struct{}

var Bed = donburi.NewComponentType[BedData]()

// WaterData marks a hazard zone; touching it respawns the player at the
// last safe grounded position.
type WaterData struct{}

var Water = donburi.NewComponentType[WaterData]()
