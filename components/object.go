package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/hollowgrove/ravine/gamemath"
)

type ObjectData struct {
	*resolv.Object
}

// Box returns the object's bounds as a gamemath box for overlap tests.
func (o *ObjectData) Box() gamemath.Box {
	return gamemath.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
