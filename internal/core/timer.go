package core

import "time"

// Clock returns the current time. Timers take one so tests can drive them.
type Clock func() time.Time

// FixedStep helps run world updates at a steady ticks-per-second rate while
// frames are drawn as often as the front-end likes.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         Clock
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	return NewFixedStepWithClock(tps, time.Now)
}

// NewFixedStepWithClock is NewFixedStep reading time from now.
func NewFixedStepWithClock(tps int, now Clock) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the world should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// Timer measures wall-clock time against a duration. Elapsed time only
// changes when Update is called.
type Timer struct {
	Duration time.Duration

	elapsed time.Duration
	start   time.Time
	now     Clock
}

// NewTimer starts a timer for d.
func NewTimer(d time.Duration) *Timer {
	return NewTimerWithClock(d, time.Now)
}

// NewTimerWithClock is NewTimer reading time from now.
func NewTimerWithClock(d time.Duration, now Clock) *Timer {
	return &Timer{Duration: d, start: now(), now: now}
}

// Update refreshes the elapsed time.
func (t *Timer) Update() { t.elapsed = t.now().Sub(t.start) }

// Elapsed returns the elapsed time recorded by the last Update.
func (t *Timer) Elapsed() time.Duration { return t.elapsed }

// Finished reports whether the elapsed time has reached Duration. It does
// not call Update.
func (t *Timer) Finished() bool { return t.elapsed >= t.Duration }

// Reset restarts the timer from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.start = t.now()
}
