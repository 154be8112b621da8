package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file and returns the level data. It takes an fs.FS so
// callers can pass embed.FS (the shipped levels) or any other filesystem
// (tests use fstest.MapFS).
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := &Level{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}
	// A map without a <properties> block leaves Properties nil.
	if levelMap.Properties != nil {
		lvl.Name = levelMap.Properties.GetString("name")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				lvl.Walls = append(lvl.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Platforms":
			for _, o := range og.Objects {
				periodMs := o.Properties.GetInt("periodMs")
				if periodMs <= 0 {
					periodMs = 2000
				}
				lvl.Platforms = append(lvl.Platforms, Platform{
					Rect:    Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					TravelX: float64(o.Properties.GetInt("travelX")),
					TravelY: float64(o.Properties.GetInt("travelY")),
					Period:  float64(periodMs) / 1000.0,
				})
			}
		case "Water":
			for _, o := range og.Objects {
				lvl.Water = append(lvl.Water, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Food":
			for _, o := range og.Objects {
				lvl.Food = append(lvl.Food, Food{
					X:      o.X,
					Y:      o.Y,
					Preset: o.Properties.GetString("preset"),
				})
			}
		case "Bed":
			for _, o := range og.Objects {
				r := Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				lvl.Bed = &r
				break
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				lvl.Spawn = Point{X: o.X, Y: o.Y}
				lvl.HasSpawn = true
				break
			}
		}
	}

	if !lvl.HasSpawn {
		return nil, fmt.Errorf("level %s: no PlayerSpawn object group", tmxPath)
	}

	return lvl, nil
}
