package items

// Equipment tracks the single equipped weapon. A non-throwable weapon leaves
// the inventory while equipped. A throwable stays in its slot and is held by
// reference, so firing drains the stack in place.
type Equipment struct {
	Weapon   *Item
	Held     *Stack
	HeldSlot int
}

func NewEquipment() Equipment {
	return Equipment{HeldSlot: -1}
}

// Holding reports whether the weapon is a held inventory stack.
func (e *Equipment) Holding() bool {
	return e.Held != nil
}

// Equip swaps the weapon in slot for the current one. The old weapon goes
// back to the inventory. Nothing changes when the swap cannot complete.
func (e *Equipment) Equip(inv *Inventory, slot int) bool {
	st := inv.Slot(slot)
	if st == nil || !st.Item.IsWeapon() {
		return false
	}
	if st == e.Held {
		return true
	}

	if st.Item.Category == CategoryThrowable {
		if e.Weapon != nil && e.Held == nil {
			if inv.Add(e.Weapon, 1) > 0 {
				return false
			}
		}
		e.Weapon = st.Item
		e.Held = st
		e.HeldSlot = slot
		return true
	}

	old, oldHeld := e.Weapon, e.Held != nil
	it := inv.RemoveOne(slot)
	if old != nil && !oldHeld {
		if inv.Add(old, 1) > 0 {
			st.Count++
			inv.Slots[slot] = st
			return false
		}
	}
	e.Weapon = it
	e.Held = nil
	e.HeldSlot = -1
	return true
}

// Unequip returns the weapon to the inventory. A held stack is simply
// released.
func (e *Equipment) Unequip(inv *Inventory) bool {
	if e.Weapon == nil {
		return false
	}
	if e.Held == nil && inv.Add(e.Weapon, 1) > 0 {
		return false
	}
	e.clear()
	return true
}

// ConsumeHeld removes one unit from the held stack.
func (e *Equipment) ConsumeHeld(inv *Inventory) bool {
	if e.Held == nil || inv.Slot(e.HeldSlot) != e.Held {
		return false
	}
	return inv.RemoveOne(e.HeldSlot) != nil
}

// Sync drops a held reference whose stack ran out or moved. It reports
// whether the weapon was cleared.
func (e *Equipment) Sync(inv *Inventory) bool {
	if e.Held == nil {
		return false
	}
	if e.Held.Count > 0 && inv.Slot(e.HeldSlot) == e.Held {
		return false
	}
	e.clear()
	return true
}

// Candidate is a weapon the owner could fight with. Slot is -1 for the
// currently equipped weapon.
type Candidate struct {
	Item *Item
	Slot int
}

// Candidates lists the equipped weapon first, then inventory weapons in
// slot order. The held stack is not listed twice.
func (e *Equipment) Candidates(inv *Inventory) []Candidate {
	var out []Candidate
	if e.Weapon != nil {
		out = append(out, Candidate{Item: e.Weapon, Slot: -1})
	}
	for _, i := range inv.WeaponSlots() {
		if e.Held != nil && inv.Slots[i] == e.Held {
			continue
		}
		out = append(out, Candidate{Item: inv.Slots[i].Item, Slot: i})
	}
	return out
}

func (e *Equipment) clear() {
	e.Weapon = nil
	e.Held = nil
	e.HeldSlot = -1
}
