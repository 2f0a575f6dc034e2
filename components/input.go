package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/input"
)

// PlayerInputData stores per-player input state read from its bound source.
type PlayerInputData struct {
	Source input.Source
	State  input.State
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
