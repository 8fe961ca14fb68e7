package ecs

// System updates a world once per frame.
type System interface {
	Update(w *World, f *Frame)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

// Update runs every system in order. A reset request stops the pass; the
// world is about to be discarded.
func (s *Scheduler) Update(w *World, f *Frame) {
	for _, system := range s.systems {
		if f.ResetRequested() {
			return
		}
		system.Update(w, f)
	}
}
