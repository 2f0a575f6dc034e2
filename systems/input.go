package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/components"
)

// UpdateInput polls every player's bound source.
// Must run BEFORE UpdatePlayers in the system order.
func UpdateInput(w donburi.World) {
	for e := range components.PlayerInput.Iter(w) {
		in := components.PlayerInput.Get(e)
		in.State.Poll(in.Source)
	}
}
