package animations

import "github.com/automoto/lootbound/config"

// Flags are the conditions the resolver reads each tick.
type Flags struct {
	Dead       bool
	Hurt       bool
	Eating     bool
	UsingItem  bool
	Firing     bool
	Attacking  bool
	Airborne   bool
	Rising     bool
	JumpNumber int
	Moving     bool
	Running    bool
	Sprinting  bool
}

// Resolve picks exactly one state by priority. Each branch walks its
// fallback chain and settles on the chain's last entry when no asset in it
// exists.
func Resolve(f Flags, src Source) config.StateID {
	pick := func(chain ...config.StateID) config.StateID {
		for _, s := range chain {
			if src != nil && src.HasAnimation(s) {
				return s
			}
		}
		return chain[len(chain)-1]
	}

	switch {
	case f.Dead:
		return config.Death
	case f.Hurt:
		return pick(config.Hurt, config.Idle)
	case f.Eating:
		return pick(config.Eat, config.UseItem)
	case f.UsingItem:
		return pick(config.UseItem, config.Idle)
	case f.Firing:
		return pick(config.Fire, config.Attack)
	case f.Attacking:
		return config.Attack
	case f.Airborne:
		if f.JumpNumber == 3 && src != nil && src.HasAnimation(config.TripleJump) {
			return config.TripleJump
		}
		if f.JumpNumber == 2 && src != nil && src.HasAnimation(config.DoubleJump) {
			return config.DoubleJump
		}
		if f.Rising {
			return pick(config.Jump, config.Fall)
		}
		return pick(config.Fall, config.Jump)
	case f.Moving:
		switch {
		case f.Sprinting:
			return pick(config.Sprint, config.Run, config.Walk)
		case f.Running:
			return pick(config.Run, config.Walk)
		}
		return config.Walk
	}
	return config.Idle
}

// Controller holds the resolved state of one entity and its running
// animation.
type Controller struct {
	State   config.StateID
	Current *Animation
	Elapsed float64 // seconds in State
}

func NewController() *Controller {
	return &Controller{State: config.StateNone}
}

// SetState switches to state. The frame counter restarts only when the
// state actually changes. It reports whether it changed.
func (c *Controller) SetState(state config.StateID, src Source) bool {
	if state == c.State && c.Current != nil {
		return false
	}
	c.State = state
	c.Elapsed = 0
	if src == nil {
		c.Current = placeholderAnimation()
		return true
	}
	c.Current = src.Animation(state)
	return true
}

func (c *Controller) Update(dt float64) {
	c.Elapsed += dt
	if c.Current != nil {
		c.Current.Update(dt)
	}
}
