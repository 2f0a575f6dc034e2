package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Index int
	Kills int
	// WeaponCursor is the inventory slot the last weapon cycle equipped
	// from. Cycling continues after it.
	WeaponCursor int
}

var Player = donburi.NewComponentType[PlayerData]()
