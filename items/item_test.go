package items

import (
	"math"
	"testing"
)

func TestAttackMode(t *testing.T) {
	tests := []struct {
		name string
		item *Item
		want AttackMode
	}{
		{"unarmed", nil, ModeMelee},
		{"sword", &Item{Category: CategoryMelee}, ModeMelee},
		{"bow", &Item{Category: CategoryRanged, Ammo: "arrow"}, ModeRanged},
		{"sling without ammo", &Item{Category: CategoryRanged}, ModeRanged},
		{"staff", &Item{Category: CategoryRanged, Ammo: "mana"}, ModeMagic},
		{"mana sentinel ignores case", &Item{Category: CategoryRanged, Ammo: "MaNa"}, ModeMagic},
		{"mana beats throwable", &Item{Category: CategoryThrowable, Ammo: "mana"}, ModeMagic},
		{"knife", &Item{Category: CategoryThrowable}, ModeThrowable},
		{"apple", &Item{Category: CategoryConsumable}, ModeNone},
		{"armor", &Item{Category: CategoryArmor}, ModeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.AttackMode(); got != tt.want {
				t.Errorf("AttackMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurveAt(t *testing.T) {
	tests := []struct {
		name  string
		curve Curve
		p     float64
		want  float64
	}{
		{"unset is one", Curve{}, 0.7, 1},
		{"linear start", Curve{Min: 1, Max: 2}, 0, 1},
		{"linear full", Curve{Min: 1, Max: 2}, 1, 2},
		{"in-quad half", Curve{Min: 1, Max: 3, Ease: "in-quad"}, 0.5, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.curve.At(tt.p); math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("At(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestChargePercent(t *testing.T) {
	c := &ChargeProfile{MinTime: 0.5, MaxTime: 2}
	if got := c.Percent(1); got != 0.5 {
		t.Errorf("Percent(1) = %v, want 0.5", got)
	}
	if got := c.Percent(5); got != 1 {
		t.Errorf("Percent(5) = %v, want 1", got)
	}
	var none *ChargeProfile
	if got := none.Percent(1); got != 0 {
		t.Errorf("nil Percent = %v, want 0", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := &Item{ID: "staff", Charge: &ChargeProfile{MaxTime: 1}}
	c := orig.Clone()
	c.Charge.MaxTime = 9
	if orig.Charge.MaxTime != 1 {
		t.Error("clone shares charge profile with original")
	}
}
