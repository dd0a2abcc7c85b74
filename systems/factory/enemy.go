package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/archetypes"
	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/leveldata"
	"github.com/hollowgrove/ravine/tags"
)

func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(spawn.Box.X, spawn.Box.Y, spawn.Box.W, spawn.Box.H, tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	kind := cfg.Enemy.Kinds[spawn.Kind]
	components.Enemy.SetValue(enemy, components.EnemyData{
		Kind:       spawn.Kind,
		State:      cfg.EnemyOffScreen,
		RespawnPos: gamemath.Vec2{X: spawn.Box.X, Y: spawn.Box.Y},
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		GravityExempt: kind.Flies,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: spawn.Health,
		Max:     spawn.Health,
	})

	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	return enemy
}
