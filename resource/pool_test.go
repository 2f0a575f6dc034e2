package resource

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestSpend(t *testing.T) {
	tests := []struct {
		name    string
		current float64
		amount  float64
		ok      bool
		want    float64
	}{
		{"exact", 10, 10, true, 0},
		{"partial", 10, 4, true, 6},
		{"zero", 10, 0, true, 10},
		{"insufficient", 5, 10, false, 5},
		{"negative", 5, -1, false, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Pool{Current: tt.current, Max: 100}
			if got := p.Spend(tt.amount); got != tt.ok {
				t.Fatalf("Spend(%v) = %v, want %v", tt.amount, got, tt.ok)
			}
			if p.Current != tt.want {
				t.Errorf("Current = %v, want %v", p.Current, tt.want)
			}
			if p.Current < 0 {
				t.Errorf("Current went negative: %v", p.Current)
			}
		})
	}
}

func TestRegenerateClampsToMax(t *testing.T) {
	p := Pool{Current: 95, Max: 100, RegenRate: 15}
	p.Regenerate(1)
	if p.Current != 100 {
		t.Errorf("Current = %v, want 100", p.Current)
	}
}

func TestRegenerateAccumulatesFractionalRates(t *testing.T) {
	p := Pool{Current: 0, Max: 10, RegenRate: 0.5}
	for i := 0; i < 120; i++ {
		p.Regenerate(1.0 / 60.0)
	}
	if math.Abs(p.Current-1) > 1e-6 {
		t.Errorf("Current = %v, want 1 after 2s at 0.5/s", p.Current)
	}
}

func TestDrainClampsToZero(t *testing.T) {
	p := Pool{Current: 10, Max: 100, DrainRate: 20}
	p.Drain(1)
	if p.Current != 0 {
		t.Errorf("Current = %v, want 0", p.Current)
	}
}

func TestRestoreAndReduce(t *testing.T) {
	p := NewPool(50, 0, 0)
	if got := p.Reduce(80); math.Abs(got-50) > eps || !p.Empty() {
		t.Errorf("Reduce(80) = %v, Current %v", got, p.Current)
	}
	if got := p.Restore(20); got != 20 {
		t.Errorf("Restore(20) = %v, want 20", got)
	}
	if got := p.Restore(100); got != 30 || !p.Full() {
		t.Errorf("Restore(100) = %v, Current %v", got, p.Current)
	}
	if p.Fraction() != 1 {
		t.Errorf("Fraction = %v, want 1", p.Fraction())
	}
}
