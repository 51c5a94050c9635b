package glider

import "testing"

func TestPosition(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{Type: TypeLoop, Gap: 10})
	m := g.Move()
	assertPx(t, "Position(0)", m.Position(0), 0)
	assertPx(t, "Position(1)", m.Position(1), 310)
	assertPx(t, "Position(3)", m.Position(3), 930)
	// Head clones sit leftward of the origin.
	assertPx(t, "Position(-1)", m.Position(-1), -310)
	assertPx(t, "Position(-2)", m.Position(-2), -620)
}

func TestMountPositionsTrackOnStart(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{Start: 2})
	assertPx(t, "Offset", g.Move().Offset(), g.Move().Position(2))
	if g.List().Style("transform") == "" {
		t.Error("no transform written")
	}
}

func TestSetOffsetWritesTransform(t *testing.T) {
	g := buildSlider(t, 3, Rect{Width: 300}, Options{})
	g.Move().SetOffset(120)
	if got := g.List().Style("transform"); got != "translateX(-120.0000px)" {
		t.Errorf("transform = %q", got)
	}
}

func TestTransformDirectionSigns(t *testing.T) {
	rtl := buildSlider(t, 3, Rect{Width: 300}, Options{Direction: DirRTL})
	rtl.Move().SetOffset(50)
	if got := rtl.List().Style("transform"); got != "translateX(50.0000px)" {
		t.Errorf("rtl transform = %q", got)
	}

	ttb := buildSlider(t, 3, Rect{Width: 200, Height: 400},
		Options{Direction: DirTTB, Height: 100})
	ttb.Move().SetOffset(50)
	if got := ttb.List().Style("transform"); got != "translateY(-50.0000px)" {
		t.Errorf("ttb transform = %q", got)
	}
}

func TestRepositionAfterOptionUpdate(t *testing.T) {
	g := buildSlider(t, 5, Rect{Width: 300}, Options{})
	g.Go("2")
	settle(g)
	before := g.Move().Offset()
	if err := g.SetOptions(func(o *Options) { o.Gap = 30 }); err != nil {
		t.Fatal(err)
	}
	after := g.Move().Offset()
	if after <= before {
		t.Errorf("offset %v → %v, want growth with the wider gap", before, after)
	}
	assertPx(t, "offset", after, g.Move().Position(2))
}
