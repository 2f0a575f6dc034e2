package gamemath

import (
	"strings"

	"github.com/tanema/gween/ease"
)

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-cubic":    ease.InCubic,
	"out-cubic":   ease.OutCubic,
	"in-sine":     ease.InSine,
	"out-sine":    ease.OutSine,
	"in-expo":     ease.InExpo,
	"out-expo":    ease.OutExpo,
}

// Ease returns the named easing function. Unknown or empty names are linear.
func Ease(name string) ease.TweenFunc {
	if fn, ok := easings[strings.ToLower(name)]; ok {
		return fn
	}
	return ease.Linear
}

// KnownEase reports whether name is a registered easing.
func KnownEase(name string) bool {
	if name == "" {
		return true
	}
	_, ok := easings[strings.ToLower(name)]
	return ok
}

// Interpolate maps progress p in [0,1] onto [from, to] along the named curve.
func Interpolate(name string, from, to, p float64) float64 {
	p = Clamp(p, 0, 1)
	fn := Ease(name)
	return float64(fn(float32(p), float32(from), float32(to-from), 1))
}
