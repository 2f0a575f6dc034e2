package components

import (
	"testing"

	"github.com/automoto/lootbound/items"
)

func TestAttackSustainWindow(t *testing.T) {
	var c CombatData
	if !c.StartAttack(0.5, 0.2) {
		t.Fatal("first attack should start")
	}
	if c.StartAttack(0.5, 0.2) {
		t.Fatal("attack during cooldown should be refused")
	}

	c.Tick(0.1)
	if !c.IsAttacking {
		t.Error("still inside the hit-active window")
	}
	c.Tick(0.15)
	if c.IsAttacking {
		t.Error("hit-active window is over after 0.25s")
	}
	if c.CanAttack() {
		t.Error("cooldown still running")
	}
	c.Tick(0.3)
	if !c.CanAttack() {
		t.Error("cooldown should be over")
	}
}

func TestChargeReleaseBeforeReadyCancels(t *testing.T) {
	profile := &items.ChargeProfile{MinTime: 0.5, MaxTime: 2}
	var c CombatData
	c.BeginCharge()
	c.UpdateCharge(0.25, profile)
	if c.ChargeReady {
		t.Fatal("not ready before MinTime")
	}
	if _, ok := c.ReleaseCharge(profile); ok {
		t.Error("early release should cancel")
	}
	if c.Charging || c.ChargeTimer != 0 {
		t.Error("cancel should reset charge state")
	}
}

func TestChargeClampsAndReportsPercent(t *testing.T) {
	profile := &items.ChargeProfile{MinTime: 0.5, MaxTime: 2}
	var c CombatData
	c.BeginCharge()
	c.UpdateCharge(1, profile)
	if !c.ChargeReady {
		t.Fatal("ready after MinTime")
	}
	c.UpdateCharge(5, profile)
	if c.ChargeTimer != 2 {
		t.Errorf("ChargeTimer = %v, want clamped to 2", c.ChargeTimer)
	}
	p, ok := c.ReleaseCharge(profile)
	if !ok || p != 1 {
		t.Errorf("ReleaseCharge = (%v, %v), want (1, true)", p, ok)
	}
}

func TestReleaseWithoutChargeIsNoop(t *testing.T) {
	var c CombatData
	if _, ok := c.ReleaseCharge(&items.ChargeProfile{MaxTime: 1}); ok {
		t.Error("release without charging should fail")
	}
}
