// Package status implements timed damage-over-time and movement effects.
package status

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// tickEpsilon absorbs the rounding of summed frame steps so a tick that
// lands exactly on an interval boundary is paid on that frame.
const tickEpsilon = 1e-9

type Kind int

const (
	None Kind = iota
	Burning
	Frozen
	Poisoned
)

var kindNames = map[Kind]string{
	None:     "none",
	Burning:  "burning",
	Frozen:   "frozen",
	Poisoned: "poisoned",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// UnmarshalText lets kinds appear by name in data files.
func (k *Kind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if s == "" {
		*k = None
		return nil
	}
	for kind, name := range kindNames {
		if name == s {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown status effect %q", string(b))
}

// Policy holds the fixed per-kind parameters.
type Policy struct {
	TickInterval    float64
	SpeedMultiplier float64
	Tint            color.RGBA
}

var policies = map[Kind]Policy{
	Burning:  {TickInterval: 0.5, SpeedMultiplier: 1.0, Tint: color.RGBA{R: 255, G: 120, B: 40, A: 255}},
	Frozen:   {TickInterval: 1.0, SpeedMultiplier: 0.4, Tint: color.RGBA{R: 120, G: 190, B: 255, A: 255}},
	Poisoned: {TickInterval: 0.75, SpeedMultiplier: 0.85, Tint: color.RGBA{R: 110, G: 220, B: 90, A: 255}},
}

// PolicyFor returns the policy of kind. None and unknown kinds report false.
func PolicyFor(k Kind) (Policy, bool) {
	p, ok := policies[k]
	return p, ok
}

// Effect is the single active status effect of an entity. The zero value is
// the none state. Remaining > 0 exactly when Kind != None.
type Effect struct {
	Kind          Kind
	Duration      float64
	Elapsed       float64
	Remaining     float64
	DamagePerTick float64
	TickInterval  float64
	// SinceTick is the time carried since the last paid tick.
	SinceTick       float64
	TicksPaid       int
	SpeedMultiplier float64
	Tint            color.RGBA
}

// Apply replaces whatever effect is active. Nothing stacks: duration and
// damage come only from this call. A None kind or non-positive duration
// clears the effect.
func (e *Effect) Apply(kind Kind, duration, damagePerTick, damageMultiplier float64) {
	p, ok := policies[kind]
	if !ok || duration <= 0 {
		e.Clear()
		return
	}
	if damageMultiplier <= 0 {
		damageMultiplier = 1
	}
	*e = Effect{
		Kind:            kind,
		Duration:        duration,
		Remaining:       duration,
		DamagePerTick:   damagePerTick * damageMultiplier,
		TickInterval:    p.TickInterval,
		SpeedMultiplier: p.SpeedMultiplier,
		Tint:            p.Tint,
	}
}

// Update advances the effect by dt and returns the damage due this step.
// Ticks are counted from the total elapsed time, so the number paid over
// the effect's life depends only on its duration and interval, never on
// the frame rate.
func (e *Effect) Update(dt float64) float64 {
	if e.Kind == None || dt <= 0 {
		return 0
	}
	e.Elapsed = min(e.Elapsed+dt, e.Duration)
	e.Remaining = e.Duration - e.Elapsed

	var dmg float64
	if e.TickInterval > 0 {
		due := int(math.Floor((e.Elapsed + tickEpsilon) / e.TickInterval))
		if due > e.TicksPaid {
			dmg = float64(due-e.TicksPaid) * e.DamagePerTick
			e.TicksPaid = due
		}
		e.SinceTick = max(e.Elapsed-float64(e.TicksPaid)*e.TickInterval, 0)
	}
	if e.Remaining <= tickEpsilon {
		e.Clear()
	}
	return dmg
}

// Clear resets to the none state.
func (e *Effect) Clear() {
	*e = Effect{}
}

func (e *Effect) Active() bool { return e.Kind != None }

// Speed returns the movement multiplier, 1 when nothing is active.
func (e *Effect) Speed() float64 {
	if e.Kind == None || e.SpeedMultiplier <= 0 {
		return 1
	}
	return e.SpeedMultiplier
}

// Payload describes an effect carried by an item or projectile.
type Payload struct {
	Kind          Kind    `yaml:"kind"`
	Duration      float64 `yaml:"duration"`
	DamagePerTick float64 `yaml:"damage_per_tick"`
}

// ApplyTo applies the payload to e with the given damage multiplier.
func (p Payload) ApplyTo(e *Effect, multiplier float64) {
	e.Apply(p.Kind, p.Duration, p.DamagePerTick, multiplier)
}
