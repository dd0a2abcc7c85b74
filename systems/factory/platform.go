package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowgrove/ravine/archetypes"
	"github.com/hollowgrove/ravine/components"
	"github.com/hollowgrove/ravine/gamemath"
	"github.com/hollowgrove/ravine/tags"
)

func CreatePlatform(ecs *ecs.ECS, box gamemath.Box) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tags.ResolvSolid)
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	if space := GetSpace(ecs); space != nil {
		space.Add(obj)
	}

	return platform
}
