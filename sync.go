package glider

import "strconv"

// syncLink is one direction of a cross-instance navigation link.
type syncLink struct {
	target *Glider
	scope  *EventScope
}

// Sync mirrors this instance's settled index onto target: whenever this
// carousel finishes a move, target navigates to the same index. Call it on
// both instances for a bidirectional link (the index check below keeps the
// echo from ping-ponging). Links survive partial destroys and are severed by
// a full one.
func (g *Glider) Sync(target *Glider) {
	link := &syncLink{target: target}
	g.wireSync(link)
	g.links = append(g.links, link)
}

// wireSync subscribes a link's moved handler on the current bus. Remounting
// replaces the bus, so Mount rewires every surviving link through here.
func (g *Glider) wireSync(link *syncLink) {
	link.scope = g.bus.Scope()
	link.scope.On(EventMoved, func(args ...any) {
		if len(args) == 0 {
			return
		}
		idx, ok := args[0].(int)
		if !ok {
			return
		}
		if link.target.Index() == idx {
			return
		}
		// The target may be mid-move or already destroyed; Go degrades to a
		// no-op or an error we deliberately drop.
		_ = link.target.Go(strconv.Itoa(idx))
	})
}

// Unsync severs every outgoing sync link.
func (g *Glider) Unsync() {
	for _, link := range g.links {
		link.scope.Destroy()
	}
	g.links = nil
}
