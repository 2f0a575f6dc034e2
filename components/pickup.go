package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/items"
)

// PickupData is an item lying in the world.
type PickupData struct {
	Item   *items.Item
	Count  int
	SpeedY float64
}

var Pickup = donburi.NewComponentType[PickupData]()
