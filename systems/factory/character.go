package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
	"github.com/automoto/lootbound/items"
	"github.com/automoto/lootbound/status"
)

// characterSpec is what players and mobs share at spawn.
type characterSpec struct {
	Physics       components.PhysicsData
	Jump          components.JumpData
	Resources     components.ResourcesData
	InventorySize int
	AnimationKey  string
}

// initCharacter fills the components every character carries. The
// collision object must already be set.
func initCharacter(env *components.EnvData, e *donburi.Entry, spec characterSpec) {
	components.Physics.SetValue(e, spec.Physics)
	components.Facing.SetValue(e, components.FacingData{X: 1})
	components.Jump.SetValue(e, spec.Jump)
	components.Resources.SetValue(e, spec.Resources)
	components.StatusEffect.SetValue(e, status.Effect{})
	components.Combat.SetValue(e, components.CombatData{})
	components.Inventory.SetValue(e, *items.NewInventory(max(spec.InventorySize, 1)))
	components.Equipment.SetValue(e, items.NewEquipment())
	components.ItemUse.SetValue(e, components.ItemUseData{Slot: -1})
	components.DamageQueue.SetValue(e, components.DamageQueueData{})
	components.Animation.SetValue(e, newAnimationData(env, spec.AnimationKey))
	components.Flash.SetValue(e, components.FlashData{})
}

// grant adds count units of id to the inventory of e and optionally equips
// them. Units that do not fit are dropped.
func grant(env *components.EnvData, e *donburi.Entry, id string, count int, equip bool) error {
	it, err := env.Registry.Create(id)
	if err != nil {
		return fmt.Errorf("grant %s: %w", id, err)
	}
	inv := components.Inventory.Get(e)
	if left := inv.Add(it, count); left > 0 {
		env.Log.Debug("inventory full, item discarded", zap.String("item", id), zap.Int("count", left))
	}
	if !equip {
		return nil
	}
	if slot := inv.Find(id); slot >= 0 {
		components.Equipment.Get(e).Equip(inv, slot)
	}
	return nil
}
