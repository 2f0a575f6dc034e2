package components

import "testing"

func TestJumpSequence(t *testing.T) {
	j := NewJumpData(3, 11, 9, 7.5)

	steps := []struct {
		name      string
		grounded  bool
		ok        bool
		strength  float64
		number    int
		remaining int
	}{
		{"ground jump", true, true, 11, 1, 2},
		{"double", false, true, 9, 2, 1},
		{"triple", false, true, 7.5, 3, 0},
		{"fourth does nothing", false, false, 0, 3, 0},
	}
	for _, s := range steps {
		strength, ok := j.Request(s.grounded)
		if ok != s.ok || strength != s.strength {
			t.Fatalf("%s: Request = (%v, %v), want (%v, %v)", s.name, strength, ok, s.strength, s.ok)
		}
		if j.CurrentJumpNumber != s.number || j.JumpsRemaining != s.remaining {
			t.Fatalf("%s: number=%d remaining=%d, want %d/%d",
				s.name, j.CurrentJumpNumber, j.JumpsRemaining, s.number, s.remaining)
		}
	}

	j.Land()
	if j.JumpsRemaining != 3 || j.CurrentJumpNumber != 0 {
		t.Errorf("after Land: remaining=%d number=%d", j.JumpsRemaining, j.CurrentJumpNumber)
	}
}

func TestLedgeWalkRecoveryJump(t *testing.T) {
	j := NewJumpData(3, 11, 9, 7.5)

	strength, ok := j.Request(false)
	if !ok || strength != 9 {
		t.Fatalf("recovery jump = (%v, %v), want double strength", strength, ok)
	}
	if j.CurrentJumpNumber != 1 {
		t.Errorf("recovery jump number = %d, want 1", j.CurrentJumpNumber)
	}
	if strength, _ := j.Request(false); strength != 9 || j.CurrentJumpNumber != 2 {
		t.Errorf("next air jump = %v as #%d, want 9 as #2", strength, j.CurrentJumpNumber)
	}
}

func TestGroundJumpIgnoresRemaining(t *testing.T) {
	j := NewJumpData(2, 10, 8, 0)
	j.JumpsRemaining = 0
	if strength, ok := j.Request(true); !ok || strength != 10 {
		t.Errorf("grounded jump = (%v, %v), want (10, true)", strength, ok)
	}
	if j.TripleJumpStrength != 8 {
		t.Errorf("missing triple strength should fall back to double, got %v", j.TripleJumpStrength)
	}
}
