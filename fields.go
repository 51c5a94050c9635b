package glider

import "github.com/zoobzio/capitan"

// Typed field keys attached to lifecycle signals.
var (
	// KeyRootID identifies the instance by its root element id.
	KeyRootID = capitan.NewStringKey("root_id")

	// KeyOldState is the state before a transition.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the state after a transition.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeySlideCount is the real slide count, excluding clones.
	KeySlideCount = capitan.NewIntKey("slide_count")

	// KeyCloneCount is the installed clone count per side.
	KeyCloneCount = capitan.NewIntKey("clone_count")
)
