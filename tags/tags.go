package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Enemy    = donburi.NewTag().SetName("Enemy")
	Platform = donburi.NewTag().SetName("Platform")
	Coin     = donburi.NewTag().SetName("Coin")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "player"
	ResolvEnemy  = "enemy"
)
