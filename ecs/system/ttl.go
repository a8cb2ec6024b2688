package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// TTLSystem ticks every TTL down one frame and removes the entities that ran
// out, after all of them have been advanced.
type TTLSystem struct {
	expired []ecs.Entity
}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.expired = s.expired[:0]
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames = max(ttl.Frames-1, 0)
		if ttl.Frames == 0 {
			s.expired = append(s.expired, e)
		}
	})

	for _, e := range s.expired {
		ecs.DestroyEntity(w, e)
	}
}
