package system

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

// EventEffectExpired carries the component.Effect that ran out this frame.
const EventEffectExpired ecs.EventType = "effect_expired"

// EffectSystem announces power-ups whose TTL runs out on this tick. It must
// be scheduled before TTLSystem, which does the actual removal.
type EffectSystem struct{}

func NewEffectSystem() *EffectSystem {
	return &EffectSystem{}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EffectComponent.Kind(), component.TTLComponent.Kind(), func(_ ecs.Entity, eff *component.Effect, ttl *component.TTL) {
		if ttl.Frames > 1 {
			return
		}
		w.Events().Push(ecs.Event{Type: EventEffectExpired, Data: *eff})
	})
}
