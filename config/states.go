package config

// StateID identifies an entity action state for animation and logic.
type StateID int

// StateNone marks an entity with no resolved state yet.
const StateNone StateID = -1

const (
	Idle StateID = iota
	Walk
	Run
	Sprint
	Jump
	DoubleJump
	TripleJump
	Fall
	Attack
	Fire
	Eat
	UseItem
	Hurt
	Death
)

// StateToFileName maps StateID to the corresponding spritesheet filename.
var StateToFileName = map[StateID]string{
	Idle:       "idle",
	Walk:       "walk",
	Run:        "run",
	Sprint:     "sprint",
	Jump:       "jump",
	DoubleJump: "double_jump",
	TripleJump: "triple_jump",
	Fall:       "fall",
	Attack:     "attack",
	Fire:       "fire",
	Eat:        "eat",
	UseItem:    "use_item",
	Hurt:       "hurt",
	Death:      "death",
}

func (s StateID) String() string {
	if name, ok := StateToFileName[s]; ok {
		return name
	}
	return "unknown"
}
