package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/items"
)

// MobData is the AI state of a mob. Target and the distances are written by
// the targeting system and read by the mob controller.
type MobData struct {
	TypeID string
	Type   *items.MobType

	Target         *donburi.Entry
	TargetDistance float64 // horizontal, center to center
	TargetDX       float64 // signed, target minus self
	TargetDY       float64

	// AI state management
	PatrolLeft        float64 // Left boundary for patrol
	PatrolRight       float64 // Right boundary for patrol
	PatrolDir         float64
	WeaponSwitchTimer float64
}

var Mob = donburi.NewComponentType[MobData]()

func (m *MobData) HasTarget() bool {
	return m.Target != nil && m.Target.Valid()
}
