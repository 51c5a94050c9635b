package glider

// Throttle collapses bursts of requests into a single trailing invocation.
// It is dt-driven: the owner calls Update every frame, and the callback fires
// once the window has elapsed since the first request of the burst. Requests
// arriving while one is pending are absorbed (last-write-wins: the callback
// reads current state when it finally runs).
type Throttle struct {
	window  float32
	elapsed float32
	pending bool
	fn      func()
}

// NewThrottle creates a throttle with the given trailing window in seconds.
// A window of zero fires on the next Update.
func NewThrottle(window float32, fn func()) *Throttle {
	return &Throttle{window: window, fn: fn}
}

// Request arms the throttle. No-op while a firing is already pending.
func (t *Throttle) Request() {
	if t.pending {
		return
	}
	t.pending = true
	t.elapsed = 0
}

// Pending reports whether a firing is armed.
func (t *Throttle) Pending() bool {
	return t.pending
}

// Cancel disarms a pending firing.
func (t *Throttle) Cancel() {
	t.pending = false
	t.elapsed = 0
}

// Update advances the throttle by dt seconds, firing the callback when the
// window elapses.
func (t *Throttle) Update(dt float32) {
	if !t.pending {
		return
	}
	t.elapsed += dt
	if t.elapsed < t.window {
		return
	}
	t.pending = false
	t.elapsed = 0
	t.fn()
}

// Interval invokes a callback every period seconds of accumulated dt.
// Used by autoplay; Progress exposes the fraction of the current period for
// progress indicators.
type Interval struct {
	period  float32
	elapsed float32
	fn      func()
}

// NewInterval creates an interval timer. A period of zero or less never
// fires.
func NewInterval(period float32, fn func()) *Interval {
	return &Interval{period: period, fn: fn}
}

// Update advances the interval by dt seconds, firing the callback each time
// a period completes. At most one firing per Update; oversized dt does not
// burst-fire.
func (i *Interval) Update(dt float32) {
	if i.period <= 0 {
		return
	}
	i.elapsed += dt
	if i.elapsed < i.period {
		return
	}
	i.elapsed = 0
	i.fn()
}

// Reset restarts the current period from zero.
func (i *Interval) Reset() {
	i.elapsed = 0
}

// Progress returns the completed fraction of the current period in [0, 1].
func (i *Interval) Progress() float32 {
	if i.period <= 0 {
		return 0
	}
	p := i.elapsed / i.period
	if p > 1 {
		p = 1
	}
	return p
}
