package systems

import (
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/lootbound/components"
)

// cycleWeapon equips the next weapon after the last cycled slot, wrapping
// around the inventory.
func cycleWeapon(env *components.EnvData, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	inv := components.Inventory.Get(e)
	eq := components.Equipment.Get(e)

	var slots []int
	for _, i := range inv.WeaponSlots() {
		if inv.Slots[i] != eq.Held {
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		return false
	}
	next := slots[0]
	for _, i := range slots {
		if i > player.WeaponCursor {
			next = i
			break
		}
	}
	if !eq.Equip(inv, next) {
		return false
	}
	player.WeaponCursor = next
	env.Log.Debug("weapon cycled",
		zap.Int("player", player.Index),
		zap.String("weapon", eq.Weapon.ID))
	return true
}

// startItemUse begins eating or using the first usable item. Items without
// a use time apply at once.
func startItemUse(env *components.EnvData, e *donburi.Entry) bool {
	use := components.ItemUse.Get(e)
	if use.Active() {
		return false
	}
	inv := components.Inventory.Get(e)
	slot := inv.FirstUsable()
	if slot < 0 {
		return false
	}
	it := inv.Slots[slot].Item
	*use = components.ItemUseData{Item: it, Slot: slot, Timer: it.UseTime}
	components.Combat.Get(e).CancelCharge()
	if use.Timer <= 0 {
		finishItemUse(env, e)
	}
	return true
}

// updateItemUse counts the use down and applies it when done.
func updateItemUse(env *components.EnvData, e *donburi.Entry) {
	use := components.ItemUse.Get(e)
	if !use.Active() {
		return
	}
	use.Timer -= env.DT
	if use.Timer <= 0 {
		finishItemUse(env, e)
	}
}

// finishItemUse consumes one unit and restores health and mana. A use whose
// item left its slot in the meantime is dropped.
func finishItemUse(env *components.EnvData, e *donburi.Entry) {
	use := components.ItemUse.Get(e)
	defer use.Cancel()

	inv := components.Inventory.Get(e)
	st := inv.Slot(use.Slot)
	if st == nil || st.Item != use.Item {
		return
	}
	it := inv.RemoveOne(use.Slot)
	res := components.Resources.Get(e)
	healed := res.Health.Restore(it.Heal)
	restored := res.Mana.Restore(it.RestoreMana)
	env.Log.Debug("item used",
		zap.String("item", it.ID),
		zap.Float64("healed", healed),
		zap.Float64("mana", restored))
}
