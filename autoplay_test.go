package glider

import (
	"math"
	"testing"
)

func buildAutoplaySlider(t *testing.T, opts Options) (*Glider, *Autoplay) {
	t.Helper()
	root := NewVSlider("t", 4)
	trackOf(root).SetRect(Rect{Width: 300})
	g, err := New(root, opts)
	if err != nil {
		t.Fatal(err)
	}
	err = g.Mount(map[string]ComponentFactory{"Autoplay": NewAutoplay}, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g, g.Component("Autoplay").(*Autoplay)
}

func TestAutoplayAdvancesPerInterval(t *testing.T) {
	g, _ := buildAutoplaySlider(t, Options{Type: TypeLoop, Interval: 0.5, Speed: 0.01})
	g.Update(0.4)
	if g.Index() != 0 {
		t.Fatalf("advanced early: index %d", g.Index())
	}
	g.Update(0.1)
	settle(g)
	if g.Index() != 1 {
		t.Fatalf("Index = %d, want 1 after one interval", g.Index())
	}
	g.Update(0.5)
	settle(g)
	if g.Index() != 2 {
		t.Errorf("Index = %d, want 2 after two intervals", g.Index())
	}
}

func TestAutoplayWrapsInLoop(t *testing.T) {
	g, _ := buildAutoplaySlider(t, Options{Type: TypeLoop, Interval: 0.5, Speed: 0.01})
	for i := 0; i < 4; i++ {
		g.Update(0.5)
		settle(g)
	}
	if g.Index() != 0 {
		t.Errorf("Index = %d, want 0 after a full cycle", g.Index())
	}
}

func TestAutoplayPauseAndPlay(t *testing.T) {
	g, a := buildAutoplaySlider(t, Options{Type: TypeLoop, Interval: 0.5, Speed: 0.01})
	a.Pause()
	if a.Playing() {
		t.Error("Playing after Pause")
	}
	g.Update(5)
	if g.Index() != 0 {
		t.Fatalf("advanced while paused: index %d", g.Index())
	}
	a.Play()
	g.Update(0.5)
	settle(g)
	if g.Index() != 1 {
		t.Errorf("Index = %d, want 1 after resuming", g.Index())
	}
}

func TestAutoplayUserNavigationResetsPeriod(t *testing.T) {
	g, _ := buildAutoplaySlider(t, Options{Type: TypeLoop, Interval: 0.5, Speed: 0.01})
	g.Update(0.4)
	g.Go("2")
	settle(g)
	// The period restarted at the move, so 0.4 more seconds is not enough.
	g.Update(0.4)
	if g.Index() != 2 {
		t.Errorf("Index = %d, want 2 (period not reset)", g.Index())
	}
	g.Update(0.1)
	settle(g)
	if g.Index() != 3 {
		t.Errorf("Index = %d, want 3", g.Index())
	}
}

func TestAutoplayProgress(t *testing.T) {
	g, a := buildAutoplaySlider(t, Options{Interval: 2})
	g.Update(1)
	if got := a.Progress(); math.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("Progress = %v, want 0.5", got)
	}
}

func TestAutoplayIntervalFollowsOptionUpdates(t *testing.T) {
	g, _ := buildAutoplaySlider(t, Options{Type: TypeLoop, Interval: 5, Speed: 0.01})
	if err := g.SetOptions(func(o *Options) { o.Interval = 0.2 }); err != nil {
		t.Fatal(err)
	}
	g.Update(0.2)
	settle(g)
	if g.Index() != 1 {
		t.Errorf("Index = %d, want 1 under the shortened interval", g.Index())
	}
}
