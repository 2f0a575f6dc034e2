package components

import "github.com/yohamta/donburi"

// JumpData tracks multi-jump bookkeeping. CurrentJumpNumber is 0 while
// grounded or after walking off a ledge without jumping.
type JumpData struct {
	MaxJumps           int
	JumpsRemaining     int
	CurrentJumpNumber  int
	JumpStrength       float64
	DoubleJumpStrength float64
	TripleJumpStrength float64
}

var Jump = donburi.NewComponentType[JumpData]()

func NewJumpData(maxJumps int, jump, double, triple float64) JumpData {
	if double == 0 {
		double = jump
	}
	if triple == 0 {
		triple = double
	}
	return JumpData{
		MaxJumps:           maxJumps,
		JumpsRemaining:     maxJumps,
		JumpStrength:       jump,
		DoubleJumpStrength: double,
		TripleJumpStrength: triple,
	}
}

// Request consumes a jump and returns its upward strength. A grounded
// request always succeeds as jump #1. An airborne request needs a remaining
// jump. The first airborne press of an entity that walked off a ledge is a
// recovery jump at double strength and counts as jump #1.
func (j *JumpData) Request(grounded bool) (float64, bool) {
	if grounded {
		j.CurrentJumpNumber = 1
		j.JumpsRemaining = max(j.MaxJumps-1, 0)
		return j.JumpStrength, true
	}
	if j.JumpsRemaining <= 0 {
		return 0, false
	}
	j.JumpsRemaining--
	if j.CurrentJumpNumber == 0 {
		j.CurrentJumpNumber = 1
		return j.DoubleJumpStrength, true
	}
	j.CurrentJumpNumber++
	if j.CurrentJumpNumber >= 3 {
		return j.TripleJumpStrength, true
	}
	return j.DoubleJumpStrength, true
}

// Land restores every jump. Call it on the tick ground contact begins.
func (j *JumpData) Land() {
	j.JumpsRemaining = j.MaxJumps
	j.CurrentJumpNumber = 0
}
