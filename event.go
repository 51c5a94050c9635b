package glider

import (
	"sort"
	"strings"
)

// Event names emitted by the core. Extensions may define their own names;
// dot-namespaces ("resize.autoplay") keep subscriptions independent while a
// bare Emit of the base name still reaches them.
const (
	EventMounted  = "mounted"
	EventReady    = "ready"
	EventMove     = "move"
	EventMoved    = "moved"
	EventActive   = "active"
	EventInactive = "inactive"
	EventVisible  = "visible"
	EventHidden   = "hidden"
	EventRefresh  = "refresh"
	EventUpdated  = "updated"
	EventResize   = "resize"
	EventResized  = "resized"
	EventScrolled = "scrolled"
	EventDestroy  = "destroy"
)

// EventHandler receives the arguments passed to Emit, positionally.
type EventHandler func(args ...any)

type busEntry struct {
	name      string
	namespace string
	owner     any
	priority  int
	seq       int
	fn        EventHandler
}

// EventBus is the only communication channel between components: a
// namespaced, priority-ordered publish/subscribe hub.
//
// Handlers for one event fire in descending priority order, ties broken by
// registration order. Emit iterates a snapshot of the registrations, so
// handlers added or removed during an emit do not affect that emit's pass.
// Handler panics are not caught: a misbehaving handler aborts the remainder
// of the emit (fails fast).
type EventBus struct {
	entries []busEntry
	seq     int
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// On registers a handler for one or more space-separated event names, each
// optionally carrying a dot-namespace ("resize.autoplay"). The optional
// priority defaults to 0; higher priorities fire first.
func (b *EventBus) On(events string, fn EventHandler, priority ...int) {
	p := 0
	if len(priority) > 0 {
		p = priority[0]
	}
	b.on(events, fn, nil, p)
}

func (b *EventBus) on(events string, fn EventHandler, owner any, priority int) {
	for _, ev := range strings.Fields(events) {
		name, namespace := splitEvent(ev)
		b.seq++
		b.entries = append(b.entries, busEntry{
			name:      name,
			namespace: namespace,
			owner:     owner,
			priority:  priority,
			seq:       b.seq,
			fn:        fn,
		})
	}
}

// Off removes handlers matching the given space-separated event names. A
// bare name removes every handler for that name regardless of namespace; a
// namespaced name ("resize.autoplay") removes only that namespace. Handlers
// registered through a scope are owned by it and are not removed here; use
// EventScope.Destroy.
func (b *EventBus) Off(events string) {
	for _, ev := range strings.Fields(events) {
		name, namespace := splitEvent(ev)
		b.remove(func(e busEntry) bool {
			return e.owner == nil && e.name == name &&
				(namespace == "" || e.namespace == namespace)
		})
	}
}

func (b *EventBus) offOwner(owner any) {
	b.remove(func(e busEntry) bool { return e.owner == owner })
}

// remove filters entries in place, nilling the tail to avoid retaining
// handler closures in the backing array.
func (b *EventBus) remove(match func(busEntry) bool) {
	kept := b.entries[:0]
	for _, e := range b.entries {
		if !match(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(b.entries); i++ {
		b.entries[i] = busEntry{}
	}
	b.entries = kept
}

// Emit invokes all handlers registered for the given base event name, in
// every namespace, passing args through positionally.
func (b *EventBus) Emit(event string, args ...any) {
	var matched []busEntry
	for _, e := range b.entries {
		if e.name == event {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return
	}
	// Stable sort: ties keep registration (seq) order.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].priority > matched[j].priority
	})
	for _, e := range matched {
		e.fn(args...)
	}
}

// Destroy removes every registration, scoped or not.
func (b *EventBus) Destroy() {
	b.entries = nil
}

// splitEvent splits "name.namespace" into its parts.
func splitEvent(ev string) (name, namespace string) {
	if i := strings.IndexByte(ev, '.'); i >= 0 {
		return ev[:i], ev[i+1:]
	}
	return ev, ""
}

// EventScope is an owner key over a bus: every handler registered through a
// scope can be removed as a group with Destroy, without the owner having to
// know every event name it subscribed to. Components use one scope each so
// their own teardown cannot leak handlers.
type EventScope struct {
	bus *EventBus
}

// Scope creates a new owner scope on the bus.
func (b *EventBus) Scope() *EventScope {
	return &EventScope{bus: b}
}

// On registers a handler owned by this scope. Same grammar as EventBus.On.
func (s *EventScope) On(events string, fn EventHandler, priority ...int) {
	p := 0
	if len(priority) > 0 {
		p = priority[0]
	}
	s.bus.on(events, fn, s, p)
}

// Emit forwards to the underlying bus.
func (s *EventScope) Emit(event string, args ...any) {
	s.bus.Emit(event, args...)
}

// Destroy removes every handler registered through this scope.
func (s *EventScope) Destroy() {
	s.bus.offOwner(s)
}
