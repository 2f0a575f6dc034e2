package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/assets/animations"
	"github.com/automoto/lootbound/config"
)

type AnimationData struct {
	Key        string
	Library    *animations.Library
	Controller *animations.Controller
}

var Animation = donburi.NewComponentType[AnimationData]()

// SetAnimation switches state, restarting the frame counter only on change.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.Controller == nil {
		a.Controller = animations.NewController()
	}
	return a.Controller.SetState(state, a.Library)
}

// State returns the resolved state, StateNone before the first resolve.
func (a *AnimationData) State() config.StateID {
	if a.Controller == nil {
		return config.StateNone
	}
	return a.Controller.State
}
