package glider

import "fmt"

// Move owns the track offset: the signed distance, along the axis, between
// the start of slide 0 and the viewport origin. It hands transitions their
// endpoints, flips state to Moving for the duration, and snaps from a clone
// position back to the canonical real position after a loop traversal.
type Move struct {
	g      *Glider
	scope  *EventScope
	offset float64
}

func newMove(g *Glider) *Move {
	return &Move{g: g}
}

// Mount positions the track on the current index and repositions it whenever
// geometry or options change while at rest.
func (m *Move) Mount() error {
	m.scope = m.g.bus.Scope()
	m.scope.On(EventUpdated+" "+EventResized, func(...any) { m.reposition() })
	m.scope.On(EventRefresh, func(...any) { m.reposition() }, 4)
	m.jump(m.g.index)
	return nil
}

// Destroy clears the transform directive.
func (m *Move) Destroy(full bool) {
	m.g.list.SetStyle("transform", "")
	m.scope.Destroy()
}

// move starts a transition from the current index to dest, which may be out
// of range for loop carousels. The index is committed only when the
// transition reports completion.
func (m *Move) move(dest, prev int) {
	m.g.setState(StateMoving)
	m.g.bus.Emit(EventMove, dest, prev)
	m.g.transition.Start(prev, dest, func() {
		canonical := m.g.controller.Canonical(dest)
		m.g.index = canonical
		if canonical != dest {
			// The transition ended on a clone; snap to the real slide.
			m.jump(canonical)
		}
		m.g.setState(StateIdle)
		m.g.bus.Emit(EventMoved, canonical, prev)
	})
}

// Position returns the track offset that brings the slide at the given
// placement index to the viewport origin. Negative indices address head
// clones and yield negative offsets.
func (m *Move) Position(index int) float64 {
	if index == 0 {
		return 0
	}
	if index < 0 {
		return m.g.layout.TotalSize(index, false)
	}
	return m.g.layout.TotalSize(index-1, false)
}

// Offset returns the current track offset. Hosts that draw the track
// themselves read this instead of parsing the transform style.
func (m *Move) Offset() float64 {
	return m.offset
}

// SetOffset moves the track to the given offset immediately, without a
// transition. Transitions call this every frame; drag extensions call it
// while a pointer owns the track.
func (m *Move) SetOffset(offset float64) {
	m.offset = offset
	m.apply()
}

// jump snaps the track to the position of the given index.
func (m *Move) jump(index int) {
	m.SetOffset(m.Position(index))
}

// reposition re-snaps to the current index after geometry changes, unless a
// transition is mid-flight and owns the offset.
func (m *Move) reposition() {
	if m.g.state.Is(StateMoving, StateDragging) {
		return
	}
	m.jump(m.g.index)
}

// apply writes the offset out as a transform directive. Forward movement is
// a negative translation for LTR and TTB, positive for RTL.
func (m *Move) apply() {
	axis := "X"
	translate := -m.offset
	switch m.g.options.Direction {
	case DirRTL:
		translate = m.offset
	case DirTTB:
		axis = "Y"
	}
	m.g.list.SetStyle("transform", fmt.Sprintf("translate%s(%.4fpx)", axis, translate))
}
