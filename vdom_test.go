package glider

import "testing"

func TestVSliderSkeleton(t *testing.T) {
	root := NewVSlider("demo", 3)
	if root.ID() != "demo" || !root.HasClass(ClassRoot) {
		t.Fatalf("root id %q classes wrong", root.ID())
	}
	track := queryOne(root, "."+ClassTrack)
	if track == nil {
		t.Fatal("no track")
	}
	list := queryOne(track, "."+ClassList)
	if list == nil {
		t.Fatal("no list")
	}
	if got := len(list.Children()); got != 3 {
		t.Errorf("slide count = %d, want 3", got)
	}
	for _, el := range list.Children() {
		if !el.HasClass(ClassSlide) {
			t.Error("child missing slide class")
		}
	}
}

func TestVElementClasses(t *testing.T) {
	e := NewVElement("div", "a")
	e.AddClass("b")
	e.AddClass("b") // no duplicates
	if !e.HasClass("a") || !e.HasClass("b") {
		t.Error("classes missing")
	}
	e.RemoveClass("a")
	if e.HasClass("a") {
		t.Error("class not removed")
	}
}

func TestVElementStyleClearsOnEmpty(t *testing.T) {
	e := NewVElement("div")
	e.SetStyle("width", "10px")
	if e.Style("width") != "10px" {
		t.Error("style not set")
	}
	e.SetStyle("width", "")
	if e.Style("width") != "" {
		t.Error("style not cleared")
	}
}

func TestVElementInsertBefore(t *testing.T) {
	p := NewVElement("div")
	a := NewVElement("div")
	b := NewVElement("div")
	c := NewVElement("div")
	p.AppendChild(a)
	p.AppendChild(c)
	p.InsertBefore(b, c)
	kids := p.Children()
	if kids[0] != Element(a) || kids[1] != Element(b) || kids[2] != Element(c) {
		t.Error("InsertBefore order wrong")
	}
	if b.Parent() != Element(p) {
		t.Error("parent not assigned")
	}
}

func TestVElementReparent(t *testing.T) {
	p1 := NewVElement("div")
	p2 := NewVElement("div")
	c := NewVElement("div")
	p1.AppendChild(c)
	p2.AppendChild(c)
	if len(p1.Children()) != 0 {
		t.Error("child still attached to the old parent")
	}
	if c.Parent() != Element(p2) {
		t.Error("child not reparented")
	}
}

func TestVElementRemove(t *testing.T) {
	p := NewVElement("div")
	c := NewVElement("div")
	p.AppendChild(c)
	c.Remove()
	if len(p.Children()) != 0 || c.Parent() != nil {
		t.Error("Remove left the tree inconsistent")
	}
	c.Remove() // detached remove is a no-op
}

func TestVElementCloneIsDeepAndDetached(t *testing.T) {
	e := NewVElement("div", ClassSlide)
	e.SetID("orig")
	e.SetAttribute(DataAttribute, "{}")
	e.SetStyle("width", "10px")
	kid := NewVElement("span", ClassContainer)
	e.AppendChild(kid)

	c := e.Clone().(*VElement)
	if c.Parent() != nil {
		t.Error("clone has a parent")
	}
	if c.ID() != "orig" || !c.HasClass(ClassSlide) || c.Style("width") != "10px" {
		t.Error("clone lost surface state")
	}
	if len(c.Children()) != 1 || !c.Children()[0].HasClass(ClassContainer) {
		t.Fatal("clone lost its subtree")
	}

	// Mutating the copy leaves the original alone.
	c.SetID("copy")
	c.Children()[0].AddClass("extra")
	if e.ID() != "orig" || kid.HasClass("extra") {
		t.Error("clone shares state with the original")
	}
}

func TestVElementFind(t *testing.T) {
	root := NewVSlider("f", 2)
	if got := len(root.Find("." + ClassSlide)); got != 2 {
		t.Errorf("Find(.slide) = %d, want 2", got)
	}
	if got := len(root.Find("div")); got != 4 {
		t.Errorf("Find(div) = %d, want 4 (track, list, 2 slides)", got)
	}
	if got := len(root.Find(".missing")); got != 0 {
		t.Errorf("Find(.missing) = %d, want 0", got)
	}
}
