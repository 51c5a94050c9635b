package glider

import "strings"

// VElement is the in-memory implementation of the rendering port. It backs
// the test suite and headless hosts: the tree, attributes, classes, and
// inline styles behave like a document, and rects are whatever the host last
// assigned with SetRect.
type VElement struct {
	tag     string
	id      string
	rect    Rect
	attrs   map[string]string
	styles  map[string]string
	classes []string
	parent  *VElement
	kids    []*VElement
}

// NewVElement creates a detached element with the given tag and classes.
func NewVElement(tag string, classes ...string) *VElement {
	return &VElement{tag: tag, classes: append([]string(nil), classes...)}
}

// NewVSlider builds the canonical carousel skeleton:
//
//	<div class="glider" id=...>
//	  <div class="glider__track">
//	    <div class="glider__list">
//	      <div class="glider__slide"> ×slides
//
// and returns the root. Hosts assign geometry afterwards with SetRect.
func NewVSlider(id string, slides int) *VElement {
	root := NewVElement("div", ClassRoot)
	root.SetID(id)
	track := NewVElement("div", ClassTrack)
	list := NewVElement("div", ClassList)
	root.AppendChild(track)
	track.AppendChild(list)
	for i := 0; i < slides; i++ {
		list.AppendChild(NewVElement("div", ClassSlide))
	}
	return root
}

// SetRect assigns the element's measured bounding rectangle. This is the
// host-side half of the port: the engine only ever reads rects.
func (e *VElement) SetRect(r Rect) {
	e.rect = r
}

// Tag returns the element's tag name.
func (e *VElement) Tag() string { return e.tag }

func (e *VElement) ID() string      { return e.id }
func (e *VElement) SetID(id string) { e.id = id }
func (e *VElement) Rect() Rect      { return e.rect }

func (e *VElement) Style(prop string) string {
	return e.styles[prop]
}

func (e *VElement) SetStyle(prop, value string) {
	if value == "" {
		delete(e.styles, prop)
		return
	}
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[prop] = value
}

func (e *VElement) Attribute(name string) string {
	return e.attrs[name]
}

func (e *VElement) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

func (e *VElement) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

func (e *VElement) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.classes = append(e.classes, name)
}

func (e *VElement) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

func (e *VElement) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (e *VElement) Parent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (e *VElement) Children() []Element {
	out := make([]Element, len(e.kids))
	for i, k := range e.kids {
		out[i] = k
	}
	return out
}

// Find returns descendants matching selector (".class" or a tag name),
// depth-first, excluding e itself.
func (e *VElement) Find(selector string) []Element {
	var out []Element
	class := strings.HasPrefix(selector, ".")
	name := strings.TrimPrefix(selector, ".")
	var walk func(n *VElement)
	walk = func(n *VElement) {
		for _, k := range n.kids {
			if (class && k.HasClass(name)) || (!class && k.tag == name) {
				out = append(out, k)
			}
			walk(k)
		}
	}
	walk(e)
	return out
}

// AppendChild appends child, reparenting it if necessary.
func (e *VElement) AppendChild(child Element) {
	c := mustVElement(child)
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = e
	e.kids = append(e.kids, c)
}

// InsertBefore inserts child before ref. A nil ref appends. Panics if ref is
// not a child of e.
func (e *VElement) InsertBefore(child, ref Element) {
	if ref == nil {
		e.AppendChild(child)
		return
	}
	r := mustVElement(ref)
	index := -1
	for i, k := range e.kids {
		if k == r {
			index = i
			break
		}
	}
	if index < 0 {
		panic("glider: InsertBefore reference is not a child")
	}
	c := mustVElement(child)
	if c.parent != nil {
		c.parent.detach(c)
		// Detaching may have shifted the reference position.
		for i, k := range e.kids {
			if k == r {
				index = i
				break
			}
		}
	}
	c.parent = e
	e.kids = append(e.kids, nil)
	copy(e.kids[index+1:], e.kids[index:])
	e.kids[index] = c
}

// Clone deep-duplicates the subtree. The copy keeps tag, id, rect,
// attributes, classes, and styles, and has no parent.
func (e *VElement) Clone() Element {
	return e.clone()
}

func (e *VElement) clone() *VElement {
	c := &VElement{
		tag:     e.tag,
		id:      e.id,
		rect:    e.rect,
		classes: append([]string(nil), e.classes...),
	}
	if len(e.attrs) > 0 {
		c.attrs = make(map[string]string, len(e.attrs))
		for k, v := range e.attrs {
			c.attrs[k] = v
		}
	}
	if len(e.styles) > 0 {
		c.styles = make(map[string]string, len(e.styles))
		for k, v := range e.styles {
			c.styles[k] = v
		}
	}
	for _, k := range e.kids {
		kc := k.clone()
		kc.parent = c
		c.kids = append(c.kids, kc)
	}
	return c
}

// Remove detaches this element from its parent.
func (e *VElement) Remove() {
	if e.parent == nil {
		return
	}
	e.parent.detach(e)
	e.parent = nil
}

// detach removes child from e.kids without clearing child.parent. Uses
// copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *VElement) detach(child *VElement) {
	for i, k := range e.kids {
		if k == child {
			copy(e.kids[i:], e.kids[i+1:])
			e.kids[len(e.kids)-1] = nil
			e.kids = e.kids[:len(e.kids)-1]
			return
		}
	}
}

func mustVElement(el Element) *VElement {
	v, ok := el.(*VElement)
	if !ok {
		panic("glider: element is not a VElement")
	}
	return v
}
