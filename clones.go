package glider

import "fmt"

// cloneMultiplier is the safety factor applied to the clone-count base so
// enough duplicated content exists on both sides of the real set to cover
// the maximum single-frame scroll distance.
const cloneMultiplier = 2

// Clones is the infinite-loop clone synthesizer. For loop carousels it
// derives how many duplicate slides the current layout requires, generates
// them through the port, and registers them with the slide registry under
// placement indices [-N, -1] and [length, length+N-1]. When layout changes
// push the requirement above the installed count it requests a full refresh
// rather than patching, since a changed count shifts every placement index.
type Clones struct {
	g        *Glider
	scope    *EventScope
	count    int
	elements []Element
}

func newClones(g *Glider) *Clones {
	return &Clones{g: g}
}

// Mount generates the initial clone set and wires the refresh chain: clones
// are torn down first (priority 50, before the registry recollects at 40)
// and regenerated after layout has recomputed (priority 20).
func (c *Clones) Mount() error {
	c.scope = c.g.bus.Scope()
	c.scope.On(EventRefresh, func(...any) { c.clear() }, 50)
	c.scope.On(EventRefresh, func(...any) { c.remount() }, 20)
	c.scope.On(EventUpdated+" "+EventResized, func(...any) { c.observe() })
	c.remount()
	return nil
}

// Destroy removes all clone elements and handles.
func (c *Clones) Destroy(full bool) {
	c.clear()
	c.scope.Destroy()
}

// Count returns the installed clone count per side.
func (c *Clones) Count() int {
	return c.count
}

// remount recomputes the required count and regenerates. A resize signal is
// emitted afterwards so layout recomputes the total track extent including
// the new clone span.
func (c *Clones) remount() {
	c.count = c.computeCount()
	if c.count == 0 {
		return
	}
	c.generate(c.count)
	c.g.bus.Emit(EventResize)
}

// observe requests a full refresh when the required count has outgrown the
// installed one. Shrinkage is tolerated: surplus clones are harmless until
// the next refresh.
func (c *Clones) observe() {
	if c.computeCount() > c.count {
		c.g.Refresh()
	}
}

// computeCount derives the required clone count per side. Zero outside loop
// mode; an explicit option override wins; otherwise the layout's base
// (viewport/fixed-size coverage, the full set under auto-sizing, or one
// page) times a safety factor, widened for drag-flick configurations.
func (c *Clones) computeCount() int {
	o := c.g.options
	if o.Type != TypeLoop {
		return 0
	}
	if c.g.slides.GetLength(true) == 0 {
		return 0
	}
	if o.Clones >= 0 {
		return o.Clones
	}
	mult := cloneMultiplier
	if o.DragFree {
		mult = o.FlickMaxPages + 1
	}
	return c.g.layout.requiredCloneBase() * mult
}

// generate duplicates the boundary slides. The head window is the last n of
// the real sequence, the tail window the first n; when the real count is
// smaller than n the sequence conceptually repeats before slicing, which the
// wrapped source index implements without out-of-range access.
func (c *Clones) generate(n int) {
	reals := c.realSlides()
	length := len(reals)
	firstEl := reals[0].Element()
	seq := 1

	for i := 0; i < n; i++ {
		src := reals[wrap(length-n+i, length)]
		el := c.duplicate(src.Element(), &seq)
		c.g.list.InsertBefore(el, firstEl)
		c.g.slides.Register(el, i-n, src.Index())
		c.elements = append(c.elements, el)
	}
	for i := 0; i < n; i++ {
		src := reals[wrap(i, length)]
		el := c.duplicate(src.Element(), &seq)
		c.g.list.AppendChild(el)
		c.g.slides.Register(el, length+i, src.Index())
		c.elements = append(c.elements, el)
	}
}

// duplicate deep-copies a source element, strips its identity, and assigns
// the deterministic clone id. The sequence restarts at 1 for every
// generation pass, so two refreshes with unchanged inputs produce identical
// ids.
func (c *Clones) duplicate(src Element, seq *int) Element {
	el := src.Clone()
	el.SetID(fmt.Sprintf("%s-clone%03d", c.g.root.ID(), *seq))
	*seq++
	el.RemoveAttribute(DataAttribute)
	el.AddClass(ClassClone)
	return el
}

// clear removes every clone element and drops the corresponding handles.
// The synthesizer owns the duplicates it inserted, so removal happens here
// and nowhere else.
func (c *Clones) clear() {
	for _, el := range c.elements {
		el.Remove()
	}
	c.elements = c.elements[:0]
	c.g.slides.dropClones()
	c.count = 0
}

func (c *Clones) realSlides() []*Slide {
	var out []*Slide
	for _, s := range c.g.slides.Get() {
		if !s.IsClone() {
			out = append(out, s)
		}
	}
	return out
}
