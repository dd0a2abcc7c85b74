package components

import "github.com/yohamta/donburi"

// CoinData is pooled for the session: Collected toggles back to false on a
// death reset instead of the coin being destroyed.
type CoinData struct {
	Collected bool
}

var Coin = donburi.NewComponentType[CoinData]()
