package animations

// Animation steps through a frame range on a seconds clock.
type Animation struct {
	First            int
	Last             int
	Step             int     // how many indices do we move per frame
	FrameDuration    float64 // seconds each frame stays up
	elapsed          float64
	frame            int
	Looped           bool
	FreezeOnComplete bool // If true, stay on last frame instead of looping
	Placeholder      bool // substituted for a missing asset
}

func (a *Animation) Update(dt float64) {
	if a.FrameDuration <= 0 || a.Step <= 0 {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			if a.FreezeOnComplete {
				// Stay on last frame
				a.frame = a.Last
				a.elapsed = 0
				return
			}
			// loop back to the beginning
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.Looped = false
}

// Duration is the length of one pass in seconds.
func (a *Animation) Duration() float64 {
	if a.Step <= 0 {
		return a.FrameDuration
	}
	return float64((a.Last-a.First)/a.Step+1) * a.FrameDuration
}

// Clone returns a restarted copy so entities never share frame counters.
func (a *Animation) Clone() *Animation {
	c := *a
	c.Restart()
	return &c
}

func NewAnimation(first, last, step int, frameDuration float64) *Animation {
	return &Animation{
		First:         first,
		Last:          last,
		Step:          step,
		FrameDuration: frameDuration,
		frame:         first,
	}
}

// placeholderAnimation is a single held frame.
func placeholderAnimation() *Animation {
	a := NewAnimation(0, 0, 1, 1)
	a.FreezeOnComplete = true
	a.Placeholder = true
	return a
}
