package ecs

// System advances one concern of the world by dt seconds.
type System interface {
	Update(w *World, dt float64)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World, dt float64)

func (f SystemFunc) Update(w *World, dt float64) {
	f(w, dt)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in order, then drops events nobody drained.
func (s *Scheduler) Update(w *World, dt float64) {
	if w == nil {
		return
	}
	for _, system := range s.systems {
		system.Update(w, dt)
	}
	w.events.flush()
}

