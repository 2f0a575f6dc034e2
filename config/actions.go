package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDropThrough
	ActionAttack
	ActionSprint
	ActionUseItem
	ActionCycleWeapon
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionJump:        "jump",
	ActionDropThrough: "drop_through",
	ActionAttack:      "attack",
	ActionSprint:      "sprint",
	ActionUseItem:     "use_item",
	ActionCycleWeapon: "cycle_weapon",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
