package components

import (
	cfg "github.com/mossrock/turnstone/config"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY       float64
	LastSafeX, LastSafeY float64 // last position where the player was safely grounded
	FoodEaten            int
	SizePreset           cfg.SizePresetID
	Sleeping             bool
}

var Player = donburi.NewComponentType[PlayerData]()
