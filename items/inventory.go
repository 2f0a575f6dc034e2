package items

// Stack is a run of identical items in one inventory slot.
type Stack struct {
	Item  *Item
	Count int
}

// Inventory is a fixed number of slots. Empty slots are nil.
type Inventory struct {
	Slots []*Stack
}

func NewInventory(size int) *Inventory {
	return &Inventory{Slots: make([]*Stack, size)}
}

// Slot returns the stack at i, or nil for an empty or invalid slot.
func (inv *Inventory) Slot(i int) *Stack {
	if inv == nil || i < 0 || i >= len(inv.Slots) {
		return nil
	}
	return inv.Slots[i]
}

// Add stores count units of it, merging into existing stacks of the same id
// before filling empty slots. It returns the units that did not fit.
func (inv *Inventory) Add(it *Item, count int) int {
	if it == nil || count <= 0 {
		return 0
	}
	limit := it.StackLimit()
	for _, st := range inv.Slots {
		if count == 0 {
			return 0
		}
		if st == nil || st.Item.ID != it.ID || st.Count >= limit {
			continue
		}
		n := min(limit-st.Count, count)
		st.Count += n
		count -= n
	}
	for i, st := range inv.Slots {
		if count == 0 {
			return 0
		}
		if st != nil {
			continue
		}
		n := min(limit, count)
		item := it
		if n < count {
			// each slot owns its own instance
			item = it.Clone()
		}
		inv.Slots[i] = &Stack{Item: item, Count: n}
		count -= n
	}
	return count
}

// CanAdd reports whether count units of it would fit.
func (inv *Inventory) CanAdd(it *Item, count int) bool {
	if it == nil || count <= 0 {
		return true
	}
	limit := it.StackLimit()
	room := 0
	for _, st := range inv.Slots {
		switch {
		case st == nil:
			room += limit
		case st.Item.ID == it.ID:
			room += max(0, limit-st.Count)
		}
		if room >= count {
			return true
		}
	}
	return false
}

// RemoveOne takes one unit from slot i. The slot is emptied when its stack
// runs out. It returns nil when the slot is empty.
func (inv *Inventory) RemoveOne(i int) *Item {
	st := inv.Slot(i)
	if st == nil || st.Count <= 0 {
		return nil
	}
	st.Count--
	if st.Count == 0 {
		inv.Slots[i] = nil
	}
	return st.Item
}

// FindAmmo returns the first slot holding ammo for name, or -1.
func (inv *Inventory) FindAmmo(name string) int {
	if inv == nil || name == "" {
		return -1
	}
	for i, st := range inv.Slots {
		if st != nil && st.Count > 0 && st.Item.IsAmmoFor(name) {
			return i
		}
	}
	return -1
}

// Find returns the first slot holding item id, or -1.
func (inv *Inventory) Find(id string) int {
	if inv == nil {
		return -1
	}
	for i, st := range inv.Slots {
		if st != nil && st.Item.ID == id {
			return i
		}
	}
	return -1
}

// Count totals the units of item id.
func (inv *Inventory) Count(id string) int {
	if inv == nil {
		return 0
	}
	n := 0
	for _, st := range inv.Slots {
		if st != nil && st.Item.ID == id {
			n += st.Count
		}
	}
	return n
}

// WeaponSlots lists slots holding weapons, in slot order.
func (inv *Inventory) WeaponSlots() []int {
	if inv == nil {
		return nil
	}
	var out []int
	for i, st := range inv.Slots {
		if st != nil && st.Item.IsWeapon() {
			out = append(out, i)
		}
	}
	return out
}

// FirstUsable returns the first slot with a quick-usable item, or -1.
func (inv *Inventory) FirstUsable() int {
	if inv == nil {
		return -1
	}
	for i, st := range inv.Slots {
		if st != nil && st.Item.Usable() {
			return i
		}
	}
	return -1
}

// Empty reports whether no slot holds anything.
func (inv *Inventory) Empty() bool {
	for _, st := range inv.Slots {
		if st != nil {
			return false
		}
	}
	return true
}
