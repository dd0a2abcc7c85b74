package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/archetypes"
	"github.com/hollowgrove/ravine/components"
	cfg "github.com/hollowgrove/ravine/config"
)

func CreateCoin(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	coin := archetypes.Coin.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Coin.Size, cfg.Coin.Size)
	obj.Data = coin
	components.Object.SetValue(coin, components.ObjectData{Object: obj})
	components.Coin.SetValue(coin, components.CoinData{})

	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	return coin
}
