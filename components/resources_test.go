package components

import (
	"math"
	"testing"

	"github.com/automoto/lootbound/resource"
)

func TestSprintDrainThenRegen(t *testing.T) {
	r := ResourcesData{Stamina: resource.NewPool(100, 15, 20)}
	const dt = 1.0 / 60.0

	r.Sprinting = true
	for i := 0; i < 120; i++ {
		r.Update(dt)
	}
	if math.Abs(r.Stamina.Current-60) > 1e-6 {
		t.Fatalf("after 2s sprint: stamina = %v, want 60", r.Stamina.Current)
	}

	r.Sprinting = false
	for i := 0; i < 60; i++ {
		r.Update(dt)
	}
	if math.Abs(r.Stamina.Current-75) > 1e-6 {
		t.Errorf("after 1s rest: stamina = %v, want 75", r.Stamina.Current)
	}
}
