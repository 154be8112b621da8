package assets

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// LevelFS returns the embedded level filesystem, rooted so paths look like
// "levels/level1.tmx".
func LevelFS() embed.FS {
	return levelFS
}

// LevelPaths lists the embedded level files in order.
func LevelPaths() ([]string, error) {
	entries, err := levelFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read embedded levels: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		paths = append(paths, "levels/"+e.Name())
	}
	sort.Strings(paths)
	return paths, nil
}
