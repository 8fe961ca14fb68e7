package ecs

// Frame is the per-update context handed to every system.
type Frame struct {
	// Number is the monotonic frame counter of the current scene.
	Number int
	// Player is the current player entity; it may be stale or zero.
	Player Entity

	resetReason string
	reset       bool
}

// RequestReset asks the owner of the world to discard it and rebuild the
// scene once the current system returns.
func (f *Frame) RequestReset(reason string) {
	if f == nil || f.reset {
		return
	}
	f.reset = true
	f.resetReason = reason
}

func (f *Frame) ResetRequested() bool {
	return f != nil && f.reset
}

func (f *Frame) ResetReason() string {
	if f == nil {
		return ""
	}
	return f.resetReason
}
