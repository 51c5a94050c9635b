package glider

import "github.com/zoobzio/capitan"

// Lifecycle signals. These instrument the engine for hosts that hook capitan
// globally; components themselves communicate over the event bus only.
var (
	// SignalMounted is emitted when an instance finishes mounting.
	SignalMounted = capitan.NewSignal(
		"glider.mounted",
		"Carousel instance mounted",
	)

	// SignalRefreshed is emitted after a full refresh pass.
	SignalRefreshed = capitan.NewSignal(
		"glider.refreshed",
		"Carousel instance refreshed",
	)

	// SignalStateChanged is emitted on every state cell transition.
	SignalStateChanged = capitan.NewSignal(
		"glider.state.changed",
		"Carousel state transition",
	)

	// SignalDestroyed is emitted when an instance is torn down.
	SignalDestroyed = capitan.NewSignal(
		"glider.destroyed",
		"Carousel instance destroyed",
	)
)
