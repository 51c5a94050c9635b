package glider

import (
	"math"
	"testing"
)

func TestSlideTransitionLifecycle(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{Speed: 0.4})
	target := g.Move().Position(1)

	g.Go("1")
	if g.State() != StateMoving {
		t.Fatalf("state = %v, want moving", g.State())
	}
	if g.Index() != 0 {
		t.Fatal("index committed before the transition finished")
	}

	g.Update(0.2)
	off := g.Move().Offset()
	if off <= 0 || off >= target {
		t.Errorf("mid-flight offset = %v, want strictly between 0 and %v", off, target)
	}

	g.Update(0.3)
	if g.State() != StateIdle || g.Index() != 1 {
		t.Errorf("after settling: state %v index %d", g.State(), g.Index())
	}
	if got := g.Move().Offset(); math.Abs(got-target) > 1e-6 {
		t.Errorf("final offset = %v, want %v", got, target)
	}
}

func TestMoveEventsBracketTransition(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{})
	var moves, moveds [][2]int
	g.On(EventMove, func(args ...any) {
		moves = append(moves, [2]int{args[0].(int), args[1].(int)})
	})
	g.On(EventMoved, func(args ...any) {
		moveds = append(moveds, [2]int{args[0].(int), args[1].(int)})
	})

	g.Go("2")
	if len(moves) != 1 || moves[0] != [2]int{2, 0} {
		t.Errorf("move events = %v", moves)
	}
	if len(moveds) != 0 {
		t.Error("moved fired before the transition finished")
	}
	settle(g)
	if len(moveds) != 1 || moveds[0] != [2]int{2, 0} {
		t.Errorf("moved events = %v", moveds)
	}
}

func TestZeroSpeedIsInstant(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{})
	if err := g.SetOptions(func(o *Options) { o.Speed = 0 }); err != nil {
		t.Fatal(err)
	}
	g.Go("3")
	// No Update needed: done ran synchronously.
	if g.State() != StateIdle || g.Index() != 3 {
		t.Errorf("state %v index %d, want instant idle at 3", g.State(), g.Index())
	}
}

func TestLoopTraversalSnapsToCanonical(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{Type: TypeLoop})
	g.Go("<")
	settle(g)
	if g.Index() != 4 {
		t.Fatalf("Index = %d, want 4", g.Index())
	}
	// The track ended on a head clone and snapped to the real position.
	want := g.Move().Position(4)
	if got := g.Move().Offset(); math.Abs(got-want) > 1e-6 {
		t.Errorf("offset = %v, want %v", got, want)
	}

	g.Go(">")
	settle(g)
	if g.Index() != 0 {
		t.Errorf("Index = %d, want 0 after wrapping forward", g.Index())
	}
}

func TestRefreshCancelsInFlightTransition(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{})
	g.Go("3")
	if g.State() != StateMoving {
		t.Fatal("not moving")
	}
	g.Refresh()
	if g.State() != StateIdle {
		t.Fatalf("state = %v, want idle after refresh", g.State())
	}
	if g.Index() != 0 {
		t.Errorf("Index = %d, cancelled transition must not commit", g.Index())
	}
	g.Update(1)
	if g.Index() != 0 {
		t.Error("cancelled transition completed later")
	}
}

func TestFadeTransition(t *testing.T) {
	g := buildSlider(t, 3, Rect{Width: 300}, Options{Type: TypeFade})
	s0 := g.Slides().GetAt(0).Element()
	s1 := g.Slides().GetAt(1).Element()
	if s0.Style("opacity") != "1.000" || s1.Style("opacity") != "0" {
		t.Fatalf("initial opacity: s0 %q s1 %q", s0.Style("opacity"), s1.Style("opacity"))
	}

	g.Go("1")
	if g.State() != StateMoving {
		t.Fatal("not moving")
	}
	// The track parks on the destination immediately; only opacity animates.
	if got := g.Move().Offset(); got != g.Move().Position(1) {
		t.Errorf("offset = %v, want parked on the destination", got)
	}
	settle(g)
	if g.State() != StateIdle || g.Index() != 1 {
		t.Errorf("state %v index %d", g.State(), g.Index())
	}
	if s1.Style("opacity") != "1.000" {
		t.Errorf("destination opacity = %q, want 1.000", s1.Style("opacity"))
	}
}

func TestCustomTransitionFactory(t *testing.T) {
	var started bool
	factory := func(g *Glider) Transition {
		return &recordingTransition{g: g, started: &started}
	}
	root := NewVSlider("t", 3)
	trackOf(root).SetRect(Rect{Width: 300})
	g, err := New(root, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Mount(nil, factory); err != nil {
		t.Fatal(err)
	}
	g.Go("1")
	if !started {
		t.Error("custom transition not used")
	}
	if g.Index() != 1 {
		t.Errorf("Index = %d, want 1", g.Index())
	}
}

// recordingTransition completes synchronously.
type recordingTransition struct {
	g       *Glider
	started *bool
}

func (r *recordingTransition) Mount() error { return nil }

func (r *recordingTransition) Start(from, to int, done func()) {
	*r.started = true
	r.g.Move().SetOffset(r.g.Move().Position(to))
	done()
}

func (r *recordingTransition) Cancel()           {}
func (r *recordingTransition) Update(dt float32) {}
