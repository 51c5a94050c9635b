package glider

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates between two indices. The host selects one at mount:
// the fade strategy for fade carousels, the slide strategy otherwise, or a
// user-supplied factory. Strategies run inside the frame loop; Start must
// eventually call done exactly once, synchronously when the configured speed
// is zero or less.
type Transition interface {
	Component
	// Start begins animating from the current position to the slide at
	// placement index to. done commits the movement.
	Start(from, to int, done func())
	// Cancel abandons an in-flight animation without calling done.
	Cancel()
	// Update advances the animation by dt seconds.
	Update(dt float32)
}

// TransitionFactory builds a transition strategy bound to an instance.
type TransitionFactory func(g *Glider) Transition

// SlideTransition tweens the track offset to the destination position.
type SlideTransition struct {
	g      *Glider
	tween  *gween.Tween
	done   func()
	active bool
}

// NewSlideTransition creates the default track-movement strategy.
func NewSlideTransition(g *Glider) Transition {
	return &SlideTransition{g: g}
}

func (t *SlideTransition) Mount() error { return nil }

func (t *SlideTransition) Start(from, to int, done func()) {
	target := t.g.move.Position(to)
	speed := t.g.options.Speed
	if speed <= 0 {
		t.g.move.SetOffset(target)
		done()
		return
	}
	t.tween = gween.New(float32(t.g.move.Offset()), float32(target), speed, t.easing())
	t.done = done
	t.active = true
}

func (t *SlideTransition) Update(dt float32) {
	if !t.active {
		return
	}
	v, finished := t.tween.Update(dt)
	t.g.move.SetOffset(float64(v))
	if finished {
		t.active = false
		done := t.done
		t.done = nil
		done()
	}
}

func (t *SlideTransition) Cancel() {
	t.active = false
	t.tween = nil
	t.done = nil
}

// FadeTransition keeps the track parked on the destination slide and tweens
// its opacity from 0 to 1. Loop clone traversal does not apply: fade
// carousels address real indices only.
type FadeTransition struct {
	g      *Glider
	tween  *gween.Tween
	dest   int
	done   func()
	active bool
}

// NewFadeTransition creates the cross-fade strategy, selected by default for
// fade carousels.
func NewFadeTransition(g *Glider) Transition {
	return &FadeTransition{g: g, dest: -1}
}

// Mount hides everything but the current slide.
func (t *FadeTransition) Mount() error {
	t.setOpacity(t.g.index, 1)
	return nil
}

func (t *FadeTransition) Start(from, to int, done func()) {
	t.g.move.jump(to)
	speed := t.g.options.Speed
	if speed <= 0 {
		t.setOpacity(to, 1)
		done()
		return
	}
	t.dest = to
	t.tween = gween.New(0, 1, speed, t.easing())
	t.done = done
	t.active = true
}

func (t *FadeTransition) Update(dt float32) {
	if !t.active {
		return
	}
	v, finished := t.tween.Update(dt)
	if s := t.g.slides.GetAt(t.dest); s != nil {
		s.Element().SetStyle("opacity", fmt.Sprintf("%.3f", v))
	}
	if finished {
		t.active = false
		t.setOpacity(t.dest, 1)
		done := t.done
		t.done = nil
		done()
	}
}

func (t *FadeTransition) Cancel() {
	t.active = false
	t.tween = nil
	t.done = nil
}

// Destroy clears the opacity directives.
func (t *FadeTransition) Destroy(full bool) {
	t.g.slides.Rule("opacity", "", false)
}

// setOpacity makes the slide at index fully visible and hides the rest.
func (t *FadeTransition) setOpacity(index int, value float64) {
	for _, s := range t.g.slides.Get() {
		v := "0"
		if s.Index() == index {
			v = fmt.Sprintf("%.3f", value)
		}
		s.Element().SetStyle("opacity", v)
	}
}

func (t *SlideTransition) easing() ease.TweenFunc {
	if fn := t.g.options.Easing; fn != nil {
		return fn
	}
	return ease.OutQuad
}

func (t *FadeTransition) easing() ease.TweenFunc {
	if fn := t.g.options.Easing; fn != nil {
		return fn
	}
	return ease.OutQuad
}
