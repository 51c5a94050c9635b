package glider

import (
	"context"
	"fmt"
	"sort"

	"github.com/zoobzio/capitan"
)

// gliderIDCounter is a plain counter (no atomic — glider is single-threaded).
var gliderIDCounter int

// Glider is the root controller of one carousel instance. It owns the single
// authoritative index and state cell, instantiates the component graph, and
// exposes the public operation surface. All methods must be called from the
// host's single thread of control.
type Glider struct {
	root  Element
	track Element
	list  Element

	bus     *EventBus
	state   *StateMachine
	options Options
	index   int

	components []namedComponent
	registry   map[string]Component

	slides     *SlideRegistry
	layout     *Layout
	clones     *Clones
	controller *Controller
	move       *Move
	transition Transition

	links          []*syncLink
	pendingDestroy bool
	ctx            context.Context
}

// New creates an unmounted instance around a root element holding the
// canonical skeleton (track and list descendants). Options are merged over
// DefaultOptions, then over any embedded JSON payload in the root's
// data-glider attribute. Configuration errors are fatal here: a malformed
// payload, a missing skeleton element, or invalid geometry options all
// refuse construction.
func New(root Element, opts Options) (*Glider, error) {
	if root == nil {
		panic("glider: nil root element")
	}
	o := DefaultOptions().merge(opts)
	if raw := root.Attribute(DataAttribute); raw != "" {
		if err := o.ApplyJSON(raw); err != nil {
			return nil, err
		}
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	track := queryOne(root, "."+ClassTrack)
	if track == nil {
		return nil, fmt.Errorf("glider: root has no %s element", ClassTrack)
	}
	list := queryOne(track, "."+ClassList)
	if list == nil {
		return nil, fmt.Errorf("glider: track has no %s element", ClassList)
	}
	if root.ID() == "" {
		gliderIDCounter++
		root.SetID(fmt.Sprintf("glider%02d", gliderIDCounter))
	}

	return &Glider{
		root:    root,
		track:   track,
		list:    list,
		bus:     NewEventBus(),
		state:   NewStateMachine(StateCreated),
		options: o,
		index:   o.Start,
		ctx:     context.Background(),
	}, nil
}

// Mount instantiates the built-in components, the given extensions, and the
// transition strategy (fade for fade carousels, slide otherwise, unless a
// factory is supplied), then runs the two startup phases: Setup on every
// instance, then Mount on every instance. Mount is refused unless the
// current state is Created or Destroyed, so double-mounting surfaces as an
// error instead of silently re-instantiating the graph.
func (g *Glider) Mount(extensions map[string]ComponentFactory, transition TransitionFactory) error {
	if !g.state.Is(StateCreated, StateDestroyed) {
		return fmt.Errorf("glider: already mounted (state %s)", g.state.Get())
	}
	if g.state.Is(StateDestroyed) {
		g.bus = NewEventBus()
		g.index = g.options.Start
		// Sync links survive a partial destroy; their handlers lived on the
		// old bus, so rewire them onto the new one.
		for _, link := range g.links {
			g.wireSync(link)
		}
	}
	g.registry = make(map[string]Component)
	g.components = nil

	g.slides = newSlideRegistry(g)
	g.layout = newLayout(g)
	g.clones = newClones(g)
	g.controller = newController(g)
	g.move = newMove(g)
	g.register("Slides", g.slides)
	g.register("Layout", g.layout)
	g.register("Clones", g.clones)
	g.register("Controller", g.controller)
	g.register("Move", g.move)

	if transition == nil {
		if g.options.Type == TypeFade {
			transition = NewFadeTransition
		} else {
			transition = NewSlideTransition
		}
	}
	g.transition = transition(g)
	g.register("Transition", g.transition)

	names := make([]string, 0, len(extensions))
	for name := range extensions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		g.register(name, extensions[name](g))
	}

	// Phase 1: every component can read the fully populated registry before
	// anything mounts.
	for _, nc := range g.components {
		if s, ok := nc.comp.(Setuper); ok {
			s.Setup()
		}
	}

	// Phase 2: mount in registration order.
	g.setState(StateMounted)
	for i, nc := range g.components {
		if err := nc.comp.Mount(); err != nil {
			// Unwind the components that already mounted so no stale
			// subscriptions survive onto a retry.
			for _, prev := range g.components[:i] {
				if d, ok := prev.comp.(Destroyer); ok {
					d.Destroy(false)
				}
			}
			g.components = nil
			g.registry = nil
			g.state.Set(StateCreated)
			return fmt.Errorf("glider: mount %s: %w", nc.name, err)
		}
	}

	g.slides.update()
	g.bus.Emit(EventMounted)
	g.bus.Emit(EventReady)
	if g.state.Is(StateDestroyed) {
		// A destroy requested before ready ran during the ready emit.
		return nil
	}
	g.setState(StateIdle)
	capitan.Emit(g.ctx, SignalMounted,
		KeyRootID.Field(g.root.ID()),
		KeySlideCount.Field(g.Length()),
		KeyCloneCount.Field(g.clones.Count()),
	)
	return nil
}

func (g *Glider) register(name string, c Component) {
	g.registry[name] = c
	g.components = append(g.components, namedComponent{name: name, comp: c})
}

// Update advances the instance by one frame: the layout's resize probe,
// every Updater extension, and finally the transition, so a finishing tween
// settles within the same frame.
func (g *Glider) Update(dt float32) {
	if !g.state.Is(StateMounted, StateIdle, StateMoving, StateDragging) {
		return
	}
	for _, nc := range g.components {
		if nc.comp == Component(g.transition) {
			continue
		}
		if u, ok := nc.comp.(Updater); ok {
			u.Update(dt)
		}
	}
	g.transition.Update(dt)
}

// Go navigates by control token: an absolute index ("3"), a relative move
// ("+2", "-1"), a page step (">", "<"), or an absolute page (">2"). A
// destination resolving to the current index is a no-op, as is any call
// while a transition or drag is in flight. Calling Go on an unmounted
// instance is an error.
func (g *Glider) Go(token string) error {
	if g.state.Is(StateCreated, StateDestroyed) {
		return fmt.Errorf("glider: not mounted")
	}
	if !g.state.Is(StateIdle) {
		return nil
	}
	if g.slides.GetLength(true) == 0 {
		return nil
	}
	dest, err := g.controller.Destination(token)
	if err != nil {
		return err
	}
	if g.controller.Canonical(dest) == g.index {
		return nil
	}
	g.move.move(dest, g.index)
	return nil
}

// Add inserts a slide element at the given index; a negative or
// out-of-range index appends. The instance refreshes afterwards when
// mounted.
func (g *Glider) Add(content Element, at int) {
	if content == nil {
		panic("glider: nil content element")
	}
	if !content.HasClass(ClassSlide) {
		content.AddClass(ClassSlide)
	}
	var ref Element
	if g.mounted() {
		if s := g.slides.GetAt(at); at >= 0 && s != nil && !s.IsClone() {
			ref = s.Element()
		}
		g.list.InsertBefore(content, ref)
		g.Refresh()
		return
	}
	kids := g.list.Children()
	if at >= 0 && at < len(kids) {
		ref = kids[at]
	}
	g.list.InsertBefore(content, ref)
}

// Remove deletes every real slide the matcher selects, then refreshes.
func (g *Glider) Remove(matcher func(*Slide) bool) {
	if !g.mounted() {
		return
	}
	removed := false
	for _, s := range g.slides.Get() {
		if !s.IsClone() && matcher(s) {
			s.Element().Remove()
			removed = true
		}
	}
	if removed {
		g.Refresh()
	}
}

// Refresh rebuilds the instance against the current document and options:
// clones are torn down and regenerated, slides recollected, and layout
// recomputed, all through the prioritized refresh chain on the bus. An
// in-flight transition is cancelled first; the index stays where it was.
func (g *Glider) Refresh() {
	if !g.mounted() {
		return
	}
	if g.state.Is(StateMoving) {
		g.transition.Cancel()
		g.setState(StateIdle)
	}
	g.bus.Emit(EventRefresh)
	capitan.Emit(g.ctx, SignalRefreshed,
		KeyRootID.Field(g.root.ID()),
		KeySlideCount.Field(g.Length()),
		KeyCloneCount.Field(g.clones.Count()),
	)
}

// Destroy tears the instance down: every component's Destroy in
// registration order, the destroy event, then the bus itself. A full
// destroy additionally severs sync links; a partial one (option-driven
// remount) keeps them. Destroy requested before ready has fired is deferred
// until it does, so a half-built component graph is never torn down.
func (g *Glider) Destroy(full bool) {
	if g.state.Is(StateDestroyed) {
		return
	}
	if g.state.Is(StateCreated) {
		if !g.pendingDestroy {
			g.pendingDestroy = true
			g.bus.On(EventReady, func(...any) {
				g.pendingDestroy = false
				g.Destroy(full)
			})
		}
		return
	}
	g.transition.Cancel()
	for _, nc := range g.components {
		if d, ok := nc.comp.(Destroyer); ok {
			d.Destroy(full)
		}
	}
	g.bus.Emit(EventDestroy)
	g.bus.Destroy()
	g.components = nil
	g.registry = nil
	if full {
		g.Unsync()
	}
	g.setState(StateDestroyed)
	capitan.Emit(g.ctx, SignalDestroyed, KeyRootID.Field(g.root.ID()))
}

// On subscribes to the outward event surface. See EventBus.On.
func (g *Glider) On(events string, fn EventHandler, priority ...int) {
	g.bus.On(events, fn, priority...)
}

// Off removes outward subscriptions. See EventBus.Off.
func (g *Glider) Off(events string) {
	g.bus.Off(events)
}

// Emit broadcasts an event to all subscribers.
func (g *Glider) Emit(event string, args ...any) {
	g.bus.Emit(event, args...)
}

// Index returns the current index: always a real slide index.
func (g *Glider) Index() int {
	return g.index
}

// Length returns the real slide count, excluding clones.
func (g *Glider) Length() int {
	if g.slides == nil {
		return 0
	}
	return g.slides.GetLength(true)
}

// Options returns a copy of the current options.
func (g *Glider) Options() Options {
	return g.options
}

// SetOptions applies a mutation to the current options. The merged result is
// validated before taking effect; after the initial mount an updated event
// re-derives layout and clone state from the new values.
func (g *Glider) SetOptions(apply func(*Options)) error {
	updated := g.options
	apply(&updated)
	if err := updated.Validate(); err != nil {
		return err
	}
	g.options = updated
	if g.mounted() {
		g.bus.Emit(EventUpdated)
	}
	return nil
}

// State returns the current lifecycle/interaction state.
func (g *Glider) State() State {
	return g.state.Get()
}

// Component returns the registered component with the given name, or nil.
// Extensions use this to reach built-ins they do not have typed accessors
// for.
func (g *Glider) Component(name string) Component {
	return g.registry[name]
}

// Root returns the root element.
func (g *Glider) Root() Element { return g.root }

// Track returns the track element.
func (g *Glider) Track() Element { return g.track }

// List returns the list element.
func (g *Glider) List() Element { return g.list }

// Slides returns the slide registry. Nil before the first mount.
func (g *Glider) Slides() *SlideRegistry { return g.slides }

// Layout returns the layout engine. Nil before the first mount.
func (g *Glider) Layout() *Layout { return g.layout }

// Clones returns the clone synthesizer. Nil before the first mount.
func (g *Glider) Clones() *Clones { return g.clones }

// Move returns the track movement component. Nil before the first mount.
func (g *Glider) Move() *Move { return g.move }

// mounted reports whether the component graph currently exists.
func (g *Glider) mounted() bool {
	return g.state.Is(StateMounted, StateIdle, StateMoving, StateDragging)
}

// setState writes the shared state cell and instruments the transition.
func (g *Glider) setState(s State) {
	old := g.state.Get()
	if old == s {
		return
	}
	g.state.Set(s)
	capitan.Emit(g.ctx, SignalStateChanged,
		KeyRootID.Field(g.root.ID()),
		KeyOldState.Field(old.String()),
		KeyNewState.Field(s.String()),
	)
}
