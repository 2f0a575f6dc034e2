package animations

import "testing"

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0.1)
	frames := []int{}
	for i := 0; i < 4; i++ {
		a.Update(0.1)
		frames = append(frames, a.Frame())
	}
	want := []int{1, 2, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped {
		t.Error("Looped should be set after wrapping")
	}
}

func TestAnimationFreezesOnComplete(t *testing.T) {
	a := NewAnimation(0, 3, 1, 0.05)
	a.FreezeOnComplete = true
	a.Update(1)
	if a.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", a.Frame())
	}
	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Errorf("Restart left frame %d looped %v", a.Frame(), a.Looped)
	}
}

func TestAnimationDuration(t *testing.T) {
	a := NewAnimation(0, 9, 1, 0.1)
	if d := a.Duration(); d < 0.999 || d > 1.001 {
		t.Errorf("Duration = %v, want 1", d)
	}
}
