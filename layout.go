package glider

import (
	"math"
	"strconv"
)

// Layout computes the pixel geometry of track, list, and slides from the
// current options and the port's measured rects, and writes the resulting
// style directives back through the port. It is a pure function of
// (options, rects); the trigger points are mount, option updates, refresh,
// and a throttled viewport resize probe.
type Layout struct {
	g        *Glider
	scope    *EventScope
	throttle *Throttle
	lastRect Rect
}

func newLayout(g *Glider) *Layout {
	return &Layout{g: g}
}

// Mount validates geometry options, applies the initial layout, and wires
// the recompute triggers.
func (l *Layout) Mount() error {
	if err := l.g.options.Validate(); err != nil {
		return err
	}
	l.scope = l.g.bus.Scope()
	l.throttle = NewThrottle(l.g.options.ResizeThrottle, func() {
		l.g.bus.Emit(EventResize)
	})
	l.lastRect = l.g.track.Rect()

	l.scope.On(EventUpdated, func(...any) { l.apply() }, 30)
	l.scope.On(EventRefresh, func(...any) { l.apply() }, 30)
	l.scope.On(EventResize, func(...any) {
		l.apply()
		l.g.bus.Emit(EventResized)
	})

	l.apply()
	return nil
}

// Update probes the track geometry once per frame. Changes arm the trailing
// throttle, so a burst of interactive reflow collapses into one resize pass
// that reads whatever geometry is current when it fires.
func (l *Layout) Update(dt float32) {
	if r := l.g.track.Rect(); r != l.lastRect {
		l.lastRect = r
		l.throttle.Request()
	}
	l.throttle.Update(dt)
}

// Destroy clears every style directive the layout has written.
func (l *Layout) Destroy(full bool) {
	l.throttle.Cancel()
	track, list := l.g.track, l.g.list
	track.SetStyle("padding-left", "")
	track.SetStyle("padding-right", "")
	track.SetStyle("padding-top", "")
	track.SetStyle("padding-bottom", "")
	list.SetStyle("height", "")
	l.scope.Destroy()
}

func (l *Layout) vertical() bool {
	return l.g.options.Direction == DirTTB
}

// axis returns the track-axis extent of a rect.
func (l *Layout) axis(r Rect) float64 {
	if l.vertical() {
		return r.Height
	}
	return r.Width
}

// ListSize returns the inner track extent along the axis: the room available
// for one page of slides. Zero while the carousel holds no slides.
func (l *Layout) ListSize() float64 {
	if l.g.slides.GetLength(true) == 0 {
		return 0
	}
	size := l.axis(l.g.track.Rect()) - 2*l.g.options.Padding
	if size < 0 {
		return 0
	}
	return size
}

// SlideSize returns the axis extent of the slide at the given placement
// index, including the trailing gap unless excludeGap. Out-of-range indices
// (clones) resolve through their real source.
func (l *Layout) SlideSize(index int, excludeGap bool) float64 {
	o := l.g.options
	var size float64
	switch {
	case l.autoSized():
		n := l.g.slides.GetLength(true)
		if n == 0 {
			return 0
		}
		if s := l.g.slides.GetAt(wrap(index, n)); s != nil {
			size = l.axis(s.Element().Rect())
		}
	case l.fixedSize() > 0:
		size = l.fixedSize()
	default:
		if o.PerPage < 1 {
			return 0
		}
		size = (l.ListSize() - o.Gap*float64(o.PerPage-1)) / float64(o.PerPage)
	}
	if size < 0 {
		size = 0
	}
	if !excludeGap {
		size += o.Gap
	}
	return size
}

// TotalSize returns the signed span from the start of slide 0 to the end of
// the slide at uptoIndex, gaps included. Negative indices measure leftward
// into the head-clone region and yield a negative span. With excludeGap the
// trailing gap is omitted.
func (l *Layout) TotalSize(uptoIndex int, excludeGap bool) float64 {
	if l.g.slides.GetLength(true) == 0 {
		return 0
	}
	var total float64
	if uptoIndex >= 0 {
		for i := 0; i <= uptoIndex; i++ {
			total += l.SlideSize(i, false)
		}
		if excludeGap && total > 0 {
			total -= l.g.options.Gap
		}
	} else {
		for i := uptoIndex; i < 0; i++ {
			total -= l.SlideSize(i, false)
		}
		if excludeGap && total < 0 {
			total += l.g.options.Gap
		}
	}
	return total
}

// SliderSize returns the span of the real slides only, excluding any clone
// contribution and the trailing gap.
func (l *Layout) SliderSize() float64 {
	n := l.g.slides.GetLength(true)
	if n == 0 {
		return 0
	}
	return l.TotalSize(n-1, true)
}

// apply writes the current geometry out as style directives.
func (l *Layout) apply() {
	o := l.g.options
	track, list, slides := l.g.track, l.g.list, l.g.slides

	if l.vertical() {
		track.SetStyle("padding-top", pxOrEmpty(o.Padding))
		track.SetStyle("padding-bottom", pxOrEmpty(o.Padding))
		list.SetStyle("height", px(l.listHeight()))
		if !o.AutoHeight {
			slides.Rule("height", px(l.SlideSize(0, true)), false)
		}
		slides.Rule("margin-bottom", pxOrEmpty(o.Gap), false)
		return
	}

	track.SetStyle("padding-left", pxOrEmpty(o.Padding))
	track.SetStyle("padding-right", pxOrEmpty(o.Padding))
	if !o.AutoWidth {
		slides.Rule("width", px(l.SlideSize(0, true)), false)
	}
	if o.Height > 0 {
		slides.Rule("height", px(o.Height), true)
	} else if o.HeightRatio > 0 {
		slides.Rule("height", px(o.HeightRatio*l.g.track.Rect().Width), true)
	}
	margin := "margin-right"
	if o.Direction == DirRTL {
		margin = "margin-left"
	}
	slides.Rule(margin, pxOrEmpty(o.Gap), false)
}

// listHeight resolves the vertical list extent from the height options.
// Validate guarantees at least one of them is set.
func (l *Layout) listHeight() float64 {
	o := l.g.options
	if o.Height > 0 {
		return o.Height
	}
	if o.HeightRatio > 0 {
		return o.HeightRatio * l.g.track.Rect().Width
	}
	return l.fixedSize() * float64(o.PerPage)
}

// fixedSize returns the forced per-slide size on the current axis, or 0.
func (l *Layout) fixedSize() float64 {
	if l.vertical() {
		return l.g.options.FixedHeight
	}
	return l.g.options.FixedWidth
}

// autoSized reports whether slides are sized from their measured rects on
// the current axis.
func (l *Layout) autoSized() bool {
	if l.vertical() {
		return l.g.options.AutoHeight
	}
	return l.g.options.AutoWidth
}

// requiredCloneBase returns the clone-count base for the synthesizer:
// enough fixed-size slides to cover the viewport, the full set under
// auto-sizing, or one page.
func (l *Layout) requiredCloneBase() int {
	if fixed := l.fixedSize(); fixed > 0 {
		return int(math.Ceil(l.ListSize() / fixed))
	}
	if l.autoSized() {
		return l.g.slides.GetLength(true)
	}
	return l.g.options.PerPage
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// pxOrEmpty formats a length, clearing the property when it is zero.
func pxOrEmpty(v float64) string {
	if v == 0 {
		return ""
	}
	return px(v)
}
