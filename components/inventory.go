package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/items"
)

var Inventory = donburi.NewComponentType[items.Inventory]()

var Equipment = donburi.NewComponentType[items.Equipment]()

// ItemUseData is a consumable being eaten or used. It completes when Timer
// reaches 0.
type ItemUseData struct {
	Item  *items.Item
	Slot  int
	Timer float64
}

var ItemUse = donburi.NewComponentType[ItemUseData]()

func (u *ItemUseData) Active() bool {
	return u.Item != nil
}

func (u *ItemUseData) Eating() bool {
	return u.Item != nil && u.Item.Food
}

func (u *ItemUseData) Cancel() {
	*u = ItemUseData{Slot: -1}
}
