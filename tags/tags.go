package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Wall             = donburi.NewTag().SetName("Wall")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Food             = donburi.NewTag().SetName("Food")
	Bed              = donburi.NewTag().SetName("Bed")
	Water            = donburi.NewTag().SetName("Water")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvFood     = "food"
	ResolvBed      = "bed"
	ResolvWater    = "water"
)
