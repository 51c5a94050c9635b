package glider

// Rect is an axis-aligned bounding rectangle in host pixels. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Element is the rendering port: the only document-shaped surface the engine
// touches. Hosts provide an implementation backed by whatever actually draws
// (a real DOM bridge, a canvas, a terminal); VElement is an in-memory
// implementation for tests and headless hosts.
//
// All elements handed to one Glider must come from the same implementation,
// since Clone and InsertBefore inevitably cross element boundaries.
type Element interface {
	// ID returns the element id, or "" when unset.
	ID() string
	SetID(id string)

	// Rect returns the element's measured bounding rectangle. The engine
	// never writes rects; measurement is the host's job.
	Rect() Rect

	// Style returns the inline style value for prop, or "" when unset.
	Style(prop string) string
	// SetStyle sets an inline style value. An empty value clears it.
	SetStyle(prop, value string)

	Attribute(name string) string
	SetAttribute(name, value string)
	RemoveAttribute(name string)

	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	Parent() Element
	Children() []Element
	// Find returns all descendants matching selector, depth-first. Supported
	// selectors are ".class" and a bare tag name.
	Find(selector string) []Element

	AppendChild(child Element)
	// InsertBefore inserts child before ref among this element's children.
	// A nil ref appends.
	InsertBefore(child, ref Element)

	// Clone deep-duplicates the subtree rooted at this element. The copy has
	// no parent; ownership belongs to the caller.
	Clone() Element
	// Remove detaches this element from its parent. No-op when parentless.
	Remove()
}

// Structural class names the engine looks for and maintains on elements.
const (
	ClassRoot      = "glider"
	ClassTrack     = "glider__track"
	ClassList      = "glider__list"
	ClassSlide     = "glider__slide"
	ClassContainer = "glider__slide__container"
	ClassClone     = "glider__slide--clone"
	ClassActive    = "glider__slide--active"
	ClassVisible   = "glider__slide--visible"
	ClassPrev      = "glider__slide--prev"
	ClassNext      = "glider__slide--next"
)

// queryOne returns the first descendant of root matching selector, or nil.
func queryOne(root Element, selector string) Element {
	matches := root.Find(selector)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}
