package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowgrove/ravine/leveldata"
)

// LevelData is a singleton holding the immutable level description.
type LevelData struct {
	Level *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
