// Package resource models clamped resource pools such as health, mana and
// stamina.
package resource

// Pool is a clamped quantity with optional regeneration and drain rates in
// units per second. Current always stays within [0, Max].
type Pool struct {
	Current   float64
	Max       float64
	RegenRate float64
	DrainRate float64
}

// NewPool returns a full pool.
func NewPool(max, regen, drain float64) Pool {
	if max < 0 {
		max = 0
	}
	return Pool{Current: max, Max: max, RegenRate: regen, DrainRate: drain}
}

func (p *Pool) clamp() {
	if p.Current > p.Max {
		p.Current = p.Max
	}
	if p.Current < 0 {
		p.Current = 0
	}
}

// Regenerate adds RegenRate*dt.
func (p *Pool) Regenerate(dt float64) {
	if dt <= 0 || p.RegenRate <= 0 {
		return
	}
	p.Current += p.RegenRate * dt
	p.clamp()
}

// Drain subtracts DrainRate*dt.
func (p *Pool) Drain(dt float64) {
	if dt <= 0 || p.DrainRate <= 0 {
		return
	}
	p.Current -= p.DrainRate * dt
	p.clamp()
}

// Spend deducts amount when the pool holds at least that much. A failed
// spend leaves the pool untouched.
func (p *Pool) Spend(amount float64) bool {
	if amount < 0 || amount > p.Current {
		return false
	}
	p.Current -= amount
	p.clamp()
	return true
}

// CanSpend reports whether Spend(amount) would succeed.
func (p *Pool) CanSpend(amount float64) bool {
	return amount >= 0 && amount <= p.Current
}

// Restore adds amount up to Max and returns how much was actually added.
func (p *Pool) Restore(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := p.Current
	p.Current += amount
	p.clamp()
	return p.Current - before
}

// Reduce removes amount down to 0 and returns how much was actually removed.
func (p *Pool) Reduce(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	before := p.Current
	p.Current -= amount
	p.clamp()
	return before - p.Current
}

// Fill sets the pool to Max.
func (p *Pool) Fill() { p.Current = p.Max }

func (p *Pool) Empty() bool { return p.Current <= 0 }

func (p *Pool) Full() bool { return p.Current >= p.Max }

// Fraction returns Current/Max, or 0 for a zero-capacity pool.
func (p *Pool) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return p.Current / p.Max
}
