package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/archetypes"
	"github.com/hollowgrove/ravine/components"
	"github.com/hollowgrove/ravine/leveldata"
)

// CreateLevel registers the level singleton and spawns every entity it
// describes: the collision space, platforms, pooled enemies, and coins.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Level: level})

	CreateSpace(ecs, int(level.Width), int(level.Height), 16, 16)

	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.Box)
	}
	for _, e := range level.Enemies {
		CreateEnemy(ecs, e)
	}
	for _, c := range level.Coins {
		CreateCoin(ecs, c.Pos.X, c.Pos.Y)
	}

	return entry
}
