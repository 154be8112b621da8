// Package leveldata parses TMX level files into plain data. It has no
// dependency on ebitengine, donburi, or resolv.
package leveldata

// Level holds all gameplay data parsed from a TMX level file. Levels are
// built from object groups only; no tile layers or tilesets are used.
type Level struct {
	Name      string
	MapWidth  int
	MapHeight int

	Walls     []Rect
	Platforms []Platform
	Water     []Rect
	Food      []Food
	Bed       *Rect
	Spawn     Point
	HasSpawn  bool
}

// Rect is an axis-aligned region in level coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Platform is a floating platform oscillating along a travel axis.
type Platform struct {
	Rect
	TravelX, TravelY float64 // offset to the far end of the oscillation
	Period           float64 // seconds for one leg of the trip
}

// Food is an edible pickup; Preset names the size preset it applies
// ("small", "normal", "large").
type Food struct {
	X, Y   float64
	Preset string
}

// Point is a position in level coordinates.
type Point struct {
	X, Y float64
}
