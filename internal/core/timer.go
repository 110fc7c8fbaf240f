package core

import "time"

// FixedStep paces search animation at a steady number of steps per second,
// independent of the frame rate of the shell driving it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	maxBurst    int

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting rate steps per
// second. The first call to Due reports one step so animation starts at once.
func NewFixedStep(rate int) *FixedStep {
	fs := &FixedStep{maxBurst: 64, now: time.Now}
	fs.SetRate(rate)
	fs.accumulator = fs.step
	return fs
}

// SetRate changes the step rate. Non-positive values fall back to 60.
func (f *FixedStep) SetRate(rate int) {
	if rate <= 0 {
		rate = 60
	}
	f.step = time.Second / time.Duration(rate)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Reset drops any accumulated time.
func (f *FixedStep) Reset() {
	f.last = time.Time{}
	f.accumulator = f.step
}

// Due returns how many steps should run now. Long stalls are capped so a
// paused window does not trigger a burst of thousands of expansions.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	n := int(f.accumulator / f.step)
	if n > f.maxBurst {
		n = f.maxBurst
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}
