// Package glider is a carousel/slider orchestration engine behind an
// abstract rendering port.
//
// Glider owns everything a carousel needs except the pixels: the component
// lifecycle, the namespaced priority-ordered event bus that is the only
// channel between components, the shared state cell, pixel layout, and the
// infinite-loop clone synthesis that keeps a looping track seamless at any
// viewport width. Hosts provide an [Element] implementation backed by
// whatever actually draws — a DOM bridge, a canvas, a terminal — or use the
// in-memory [VElement] for tests and headless work.
//
// # Quick start
//
// Build (or bridge) the canonical skeleton, create an instance, mount it,
// and pump it from your frame loop:
//
//	root := glider.NewVSlider("demo", 5)
//	g, err := glider.New(root, glider.Options{Type: glider.TypeLoop, PerPage: 2})
//	if err != nil { ... }
//	if err := g.Mount(nil, nil); err != nil { ... }
//
//	// each frame:
//	g.Update(dt)
//
// Navigate with control tokens:
//
//	g.Go(">")   // next page
//	g.Go("<")   // previous page
//	g.Go("+2")  // two slides forward
//	g.Go("3")   // absolute index
//	g.Go(">1")  // absolute page
//
// # Components and extensions
//
// Every behavior unit is a [Component]. Built-ins (layout, slide registry,
// clone synthesizer, controller, movement) and user extensions are
// instantiated together at Mount, run a Setup pass, then mount in
// registration order. Components communicate only through the shared
// registry and the [EventBus]; see [Glider.On] for the outward event
// surface. [Autoplay] is a ready-made extension, and [Glider.Sync] links
// the navigation of two instances.
//
// Transitions are pluggable strategies: [NewSlideTransition] tweens the
// track offset, [NewFadeTransition] cross-fades slides (both via [gween]).
//
// # Looping
//
// Loop carousels duplicate boundary slides on both ends of the real set so
// the track appears seamless. The clone count follows the layout: fixed
// slide sizes, per-page counts, and drag-flick reach all widen the window,
// and the set regenerates through a full refresh whenever the requirement
// outpaces what is installed. Clone handles map back to their real source
// through [Slide.RealIndex]; the real count reported by [Glider.Length]
// never includes them.
//
// [gween]: https://github.com/tanema/gween
package glider
