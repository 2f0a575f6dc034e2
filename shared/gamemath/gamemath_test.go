package gamemath

import (
	"math"
	"testing"
)

func TestApplyFriction(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		friction float64
		want     float64
	}{
		{"positive", 3, 0.5, 2.5},
		{"negative", -3, 0.5, -2.5},
		{"stops inside friction", 0.3, 0.5, 0},
		{"stops inside friction negative", -0.3, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyFriction(tt.speed, tt.friction); got != tt.want {
				t.Errorf("ApplyFriction(%v, %v) = %v, want %v", tt.speed, tt.friction, got, tt.want)
			}
		})
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(9, 4); got != 4 {
		t.Errorf("got %v, want 4", got)
	}
	if got := ClampSpeed(-9, 4); got != -4 {
		t.Errorf("got %v, want -4", got)
	}
	if got := ClampSpeed(1, 4); got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name  string
		curve string
		p     float64
		want  float64
	}{
		{"linear start", "linear", 0, 1},
		{"linear mid", "linear", 0.5, 2},
		{"linear end", "linear", 1, 3},
		{"in-quad mid", "in-quad", 0.5, 1.5},
		{"clamped above", "linear", 2, 3},
		{"clamped below", "linear", -1, 1},
		{"unknown is linear", "wobble", 0.5, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.curve, 1, 3, tt.p)
			if math.Abs(got-tt.want) > 1e-5 {
				t.Errorf("Interpolate(%q, 1, 3, %v) = %v, want %v", tt.curve, tt.p, got, tt.want)
			}
		})
	}
}

func TestKnownEase(t *testing.T) {
	if !KnownEase("") || !KnownEase("Out-Cubic") {
		t.Error("expected empty and mixed-case names to be known")
	}
	if KnownEase("wobble") {
		t.Error("wobble should be unknown")
	}
}
