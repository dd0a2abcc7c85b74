package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/archetypes"
	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
	"github.com/hollowgrove/ravine/tags"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64, health int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		CanDash:         true,
		AttackDirection: cfg.AttackRight,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.Health.SetValue(player, components.HealthData{
		Current: health,
		Max:     cfg.Player.MaxHealth,
	})

	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	return player
}
