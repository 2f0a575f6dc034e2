package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/lootbound/items"
)

// CombatData holds attack timing, the charge accumulator and owned
// projectiles. All timers are seconds counting down to 0.
type CombatData struct {
	AttackTimer    float64
	AttackCooldown float64 // cooldown of the attack in progress
	AttackDuration float64 // hit-active part of it
	IsAttacking    bool
	ActiveHitbox   *donburi.Entry

	FireTimer   float64 // firing pose window
	HurtTimer   float64
	InvulnTimer float64

	Charging    bool
	ChargeTimer float64
	ChargeReady bool

	// Projectiles fired by this entity that are still in the world.
	Projectiles []*donburi.Entry
}

var Combat = donburi.NewComponentType[CombatData]()

func (c *CombatData) CanAttack() bool {
	return c.AttackTimer <= 0
}

// StartAttack begins a melee swing. The swing stays hit-active until the
// timer falls to cooldown-duration while the cooldown keeps running.
func (c *CombatData) StartAttack(cooldown, duration float64) bool {
	if !c.CanAttack() {
		return false
	}
	c.AttackTimer = cooldown
	c.AttackCooldown = cooldown
	c.AttackDuration = min(duration, cooldown)
	c.IsAttacking = true
	return true
}

// StartFire starts the cooldown of a shot and the firing pose.
func (c *CombatData) StartFire(cooldown, pose float64) bool {
	if !c.CanAttack() {
		return false
	}
	c.AttackTimer = cooldown
	c.AttackCooldown = cooldown
	c.AttackDuration = 0
	c.FireTimer = pose
	return true
}

// Tick advances every timer by dt.
func (c *CombatData) Tick(dt float64) {
	c.AttackTimer = countdown(c.AttackTimer, dt)
	if c.IsAttacking && c.AttackTimer <= c.AttackCooldown-c.AttackDuration {
		c.IsAttacking = false
	}
	c.FireTimer = countdown(c.FireTimer, dt)
	c.HurtTimer = countdown(c.HurtTimer, dt)
	c.InvulnTimer = countdown(c.InvulnTimer, dt)
}

func (c *CombatData) Firing() bool { return c.FireTimer > 0 }
func (c *CombatData) Hurt() bool   { return c.HurtTimer > 0 }
func (c *CombatData) Invuln() bool { return c.InvulnTimer > 0 }

// BeginCharge starts accumulating a charged shot.
func (c *CombatData) BeginCharge() {
	c.Charging = true
	c.ChargeTimer = 0
	c.ChargeReady = false
}

// UpdateCharge accumulates held time, clamped to the profile's maximum.
func (c *CombatData) UpdateCharge(dt float64, profile *items.ChargeProfile) {
	if !c.Charging || profile == nil {
		return
	}
	c.ChargeTimer = min(c.ChargeTimer+dt, profile.MaxTime)
	if c.ChargeTimer >= profile.MinTime {
		c.ChargeReady = true
	}
}

// ReleaseCharge ends the charge. It returns the charge percent and whether
// the charge was ready. An early release is a cancel.
func (c *CombatData) ReleaseCharge(profile *items.ChargeProfile) (float64, bool) {
	if !c.Charging {
		return 0, false
	}
	ready := c.ChargeReady
	p := profile.Percent(c.ChargeTimer)
	c.CancelCharge()
	if !ready {
		return 0, false
	}
	return p, true
}

// CancelCharge resets the charge fields. Nothing was spent, so nothing is
// refunded.
func (c *CombatData) CancelCharge() {
	c.Charging = false
	c.ChargeTimer = 0
	c.ChargeReady = false
}

// RemoveProjectile drops e from the owned list.
func (c *CombatData) RemoveProjectile(e *donburi.Entry) {
	for i, p := range c.Projectiles {
		if p == e {
			c.Projectiles = append(c.Projectiles[:i], c.Projectiles[i+1:]...)
			return
		}
	}
}

func countdown(v, dt float64) float64 {
	if v <= 0 {
		return 0
	}
	return max(v-dt, 0)
}
