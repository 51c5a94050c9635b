package glider

// Component is one behavior unit in a carousel's lifecycle: built-ins,
// user extensions, and the transition strategy all implement it. Mount is
// the only required hook; the host probes for the optional capabilities
// below before each phase, so a component only implements what it needs.
//
// Components never hold references to each other. They reach sibling state
// through the shared registry (synchronous queries) and the event bus
// (notification), keeping every pairing replaceable.
type Component interface {
	// Mount wires the component: subscribe to events, apply initial state.
	// Called once per lifecycle, after every component's Setup has run.
	Mount() error
}

// Setuper is the optional pre-mount hook. Setup runs on every component
// before any component mounts, so all instances can rely on the full
// registry being populated when they first read it.
type Setuper interface {
	Setup()
}

// Destroyer is the optional teardown hook. full distinguishes a complete
// teardown from a partial one (an option-driven remount); a full destroy
// additionally severs cross-instance links.
type Destroyer interface {
	Destroy(full bool)
}

// Updater is the optional per-frame hook, advanced from Glider.Update with
// the frame's dt in seconds.
type Updater interface {
	Update(dt float32)
}

// ComponentFactory builds a component bound to a carousel instance.
// Extension factories receive the same controller the built-ins do.
type ComponentFactory func(g *Glider) Component

// namedComponent pairs a registry key with its instance, preserving
// registration order for the mount and destroy passes.
type namedComponent struct {
	name string
	comp Component
}
