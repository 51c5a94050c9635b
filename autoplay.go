package glider

// Autoplay advances one page per configured interval. It is an ordinary
// extension: pass it to Mount under any key. The timer only runs while the
// carousel is idle, and any movement — autoplay's own or user navigation —
// restarts the current period.
type Autoplay struct {
	g        *Glider
	scope    *EventScope
	interval *Interval
	paused   bool
}

// NewAutoplay is the extension factory.
func NewAutoplay(g *Glider) Component {
	return &Autoplay{g: g}
}

// Mount arms the interval from the Interval option.
func (a *Autoplay) Mount() error {
	a.interval = NewInterval(a.g.options.Interval, func() {
		_ = a.g.Go(">")
	})
	a.scope = a.g.bus.Scope()
	a.scope.On(EventMove, func(...any) { a.interval.Reset() })
	a.scope.On(EventUpdated, func(...any) {
		a.interval = NewInterval(a.g.options.Interval, a.interval.fn)
	})
	return nil
}

// Destroy stops the timer.
func (a *Autoplay) Destroy(full bool) {
	a.paused = true
	a.scope.Destroy()
}

// Update advances the timer while playing and idle.
func (a *Autoplay) Update(dt float32) {
	if a.paused || !a.g.state.Is(StateIdle) {
		return
	}
	a.interval.Update(dt)
}

// Pause stops automatic advancement until Play.
func (a *Autoplay) Pause() {
	a.paused = true
}

// Play resumes automatic advancement, restarting the current period.
func (a *Autoplay) Play() {
	a.paused = false
	a.interval.Reset()
}

// Playing reports whether the timer is running.
func (a *Autoplay) Playing() bool {
	return !a.paused
}

// Progress returns the completed fraction of the current period in [0, 1],
// for progress indicators.
func (a *Autoplay) Progress() float32 {
	return a.interval.Progress()
}
