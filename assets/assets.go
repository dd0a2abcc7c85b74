package assets

import (
	"embed"
	"fmt"

	"github.com/hollowgrove/ravine/leveldata"
)

//go:embed all:levels
var levelFS embed.FS

// MustLoadLevel loads a level by name from the embedded levels directory.
func MustLoadLevel(name string) *leveldata.Level {
	path := fmt.Sprintf("levels/%s.tmx", name)
	level, err := leveldata.Load(levelFS, path)
	if err != nil {
		panic(fmt.Sprintf("Failed to load level %s: %v", path, err))
	}
	return level
}
