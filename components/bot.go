package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/config"
	"github.com/automoto/lootbound/input"
)

type BotState int

const (
	BotStateIdle BotState = iota
	BotStateChase
	BotStateAttack
	BotStateRetreat
)

// BotData drives a player through a scripted input source instead of a
// device.
type BotData struct {
	Source     *input.Scripted
	Difficulty config.BotDifficulty
	AIState    BotState

	DecisionTimer    float64
	Target           *donburi.Entry
	DistanceToTarget float64 // horizontal, center to center
	TargetDX         float64
}

var Bot = donburi.NewComponentType[BotData]()
