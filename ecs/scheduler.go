package ecs

// System advances one concern of the world by a single frame.
type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	f(w)
}

// Scheduler runs its systems in the order they were added. The encounter
// loop ticks it once per unpaused frame.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	s.Add(systems...)
	return s
}

// Add appends systems, skipping nil ones.
func (s *Scheduler) Add(systems ...System) {
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
}

func (s *Scheduler) Update(w *World) {
	if w == nil {
		return
	}
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Len is the number of scheduled systems.
func (s *Scheduler) Len() int {
	return len(s.systems)
}
