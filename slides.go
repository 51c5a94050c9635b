package glider

// Slide is the handle for one slide element, real or clone. Real handles are
// created when the registry collects the list's children and live until the
// next collect; clone handles are registered and dropped in batches by the
// clone synthesizer.
type Slide struct {
	el        Element
	container Element
	placement int
	cloneOf   int

	active  bool
	visible bool
	prev    bool
	next    bool
}

// Element returns the underlying port element.
func (s *Slide) Element() Element { return s.el }

// Index returns the placement index: position in display order. Real slides
// occupy [0, length); head clones are negative, tail clones >= length.
func (s *Slide) Index() int { return s.placement }

// RealIndex returns the index of the real slide this handle represents:
// the placement index for reals, the source index for clones.
func (s *Slide) RealIndex() int {
	if s.cloneOf >= 0 {
		return s.cloneOf
	}
	return s.placement
}

// IsClone reports whether this handle is a duplicate of a real slide.
func (s *Slide) IsClone() bool { return s.cloneOf >= 0 }

// IsActive reports whether this slide is the current one.
func (s *Slide) IsActive() bool { return s.active }

// IsVisible reports whether this slide falls inside the current page window.
func (s *Slide) IsVisible() bool { return s.visible }

// SlideRegistry owns the ordered collection of slide handles and applies
// per-slide style directives. It is the single source of slide identity for
// every other component.
type SlideRegistry struct {
	g      *Glider
	scope  *EventScope
	slides []*Slide
	ruled  map[string]bool
}

func newSlideRegistry(g *Glider) *SlideRegistry {
	return &SlideRegistry{g: g, ruled: make(map[string]bool)}
}

// Mount collects the real slides and subscribes to the refresh chain.
func (r *SlideRegistry) Mount() error {
	r.scope = r.g.bus.Scope()
	r.collect()
	// Recollect after the synthesizer has torn its clones down (priority 50)
	// and before layout recomputes (priority 30).
	r.scope.On(EventRefresh, func(...any) { r.collect() }, 40)
	r.scope.On(EventRefresh, func(...any) { r.update() }, 5)
	r.scope.On(EventResized+" "+EventMoved+" "+EventScrolled, func(...any) { r.update() })
	return nil
}

// Destroy removes status classes and every style rule applied through Rule.
func (r *SlideRegistry) Destroy(full bool) {
	for prop := range r.ruled {
		r.Rule(prop, "", false)
		r.Rule(prop, "", true)
	}
	for _, s := range r.slides {
		s.el.RemoveClass(ClassActive)
		s.el.RemoveClass(ClassVisible)
		s.el.RemoveClass(ClassPrev)
		s.el.RemoveClass(ClassNext)
	}
	r.scope.Destroy()
	r.slides = nil
	r.ruled = make(map[string]bool)
}

// collect rebuilds the handle set from the list's current children. Clone
// elements are skipped: the synthesizer registers those itself. Handles for
// elements that survive the recollect are reused, so their activity flags
// carry over and flag events stay change-only across a refresh.
func (r *SlideRegistry) collect() {
	old := make(map[Element]*Slide, len(r.slides))
	for _, s := range r.slides {
		if !s.IsClone() {
			old[s.el] = s
		}
	}
	r.slides = r.slides[:0]
	placement := 0
	for _, el := range r.g.list.Children() {
		if !el.HasClass(ClassSlide) || el.HasClass(ClassClone) {
			continue
		}
		if s, ok := old[el]; ok {
			s.placement = placement
			r.slides = append(r.slides, s)
		} else {
			r.Register(el, placement, -1)
		}
		placement++
	}
}

// Register adds a handle at the given placement index. realIfClone is the
// source real index for clones, -1 for real slides. Handles stay sorted by
// placement so Get returns display order.
func (r *SlideRegistry) Register(el Element, placement, realIfClone int) {
	s := &Slide{
		el:        el,
		container: queryOne(el, "."+ClassContainer),
		placement: placement,
		cloneOf:   realIfClone,
	}
	at := len(r.slides)
	for i, other := range r.slides {
		if other.placement > placement {
			at = i
			break
		}
	}
	r.slides = append(r.slides, nil)
	copy(r.slides[at+1:], r.slides[at:])
	r.slides[at] = s
}

// dropClones removes every clone handle. The elements themselves are removed
// by the synthesizer, which owns them.
func (r *SlideRegistry) dropClones() {
	kept := r.slides[:0]
	for _, s := range r.slides {
		if !s.IsClone() {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(r.slides); i++ {
		r.slides[i] = nil
	}
	r.slides = kept
}

// Get returns all handles in display order: head clones, reals, tail clones.
// The returned slice MUST NOT be mutated by the caller.
func (r *SlideRegistry) Get() []*Slide {
	return r.slides
}

// GetAt returns the handle at the given placement index, or nil.
func (r *SlideRegistry) GetAt(placement int) *Slide {
	for _, s := range r.slides {
		if s.placement == placement {
			return s
		}
	}
	return nil
}

// GetLength returns the handle count; with excludeClones it counts only real
// slides, which is the carousel's authoritative length.
func (r *SlideRegistry) GetLength(excludeClones bool) int {
	if !excludeClones {
		return len(r.slides)
	}
	n := 0
	for _, s := range r.slides {
		if !s.IsClone() {
			n++
		}
	}
	return n
}

// Rule applies a style directive to every slide. With useContainer, slides
// that declare a container sub-element receive the rule there instead, so
// height rules can target inner content independent of outer slide sizing.
// An empty value clears the property.
func (r *SlideRegistry) Rule(prop, value string, useContainer bool) {
	if value != "" {
		r.ruled[prop] = true
	}
	for _, s := range r.slides {
		target := s.el
		if useContainer && s.container != nil {
			target = s.container
		}
		target.SetStyle(prop, value)
	}
}

// update recomputes each handle's activity flags from the current index and
// page window, emitting transition events only on flag change.
func (r *SlideRegistry) update() {
	idx := r.g.index
	perPage := r.g.options.PerPage
	for _, s := range r.slides {
		p := s.placement

		active := p == idx
		if active != s.active {
			s.active = active
			if active {
				s.el.AddClass(ClassActive)
				r.g.bus.Emit(EventActive, s)
			} else {
				s.el.RemoveClass(ClassActive)
				r.g.bus.Emit(EventInactive, s)
			}
		}

		visible := p >= idx && p < idx+perPage
		if visible != s.visible {
			s.visible = visible
			if visible {
				s.el.AddClass(ClassVisible)
				r.g.bus.Emit(EventVisible, s)
			} else {
				s.el.RemoveClass(ClassVisible)
				r.g.bus.Emit(EventHidden, s)
			}
		}

		setFlagClass(s.el, ClassPrev, &s.prev, p == idx-1)
		setFlagClass(s.el, ClassNext, &s.next, p == idx+1)
	}
}

func setFlagClass(el Element, class string, field *bool, value bool) {
	if *field == value {
		return
	}
	*field = value
	if value {
		el.AddClass(class)
	} else {
		el.RemoveClass(class)
	}
}
