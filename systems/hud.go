package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/mossrock/turnstone/components"
	cfg "github.com/mossrock/turnstone/config"
	"github.com/mossrock/turnstone/fonts"
	"github.com/mossrock/turnstone/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the level name, food counter and the sleep message.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Main.Get()

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		text.Draw(screen, level.Name, face, 8, 14, cfg.Pause.TextColorNormal)

		if level.Complete {
			msg := "Good night..."
			text.Draw(screen, msg, fonts.Title.Get(),
				cfg.C.Width/2-60, cfg.C.Height/2, cfg.Pause.TextColorSelected)
		}
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		text.Draw(screen, fmt.Sprintf("Food: %d", player.FoodEaten), face,
			cfg.C.Width-70, 14, cfg.Pause.TextColorNormal)
	}
}
