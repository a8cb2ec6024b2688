package encounter

import (
	"github.com/milk9111/bossfight/ecs"
	"github.com/milk9111/bossfight/ecs/component"
)

var itemEffects = map[ItemKind]component.EffectKind{
	ItemTripleShot: component.EffectTripleShot,
	ItemRapidFire:  component.EffectRapidFire,
	ItemSpeedBoost: component.EffectSpeedBoost,
}

// applyItem credits an instant item or starts a timed effect for slot.
func (l *Loop) applyItem(slot int, it *Item) {
	l.log.Printf("encounter: player %d picked up %s", slot+1, it.Kind)
	l.emit(EventPickup, PickupEvent{Slot: slot, Kind: it.Kind})

	switch it.Kind {
	case ItemCoin:
		l.state.AddCoins(slot, it.Payload)
	case ItemScore:
		l.state.AddScore(slot, it.Payload)
	case ItemExtraLife:
		wasOut := l.state.Lives[slot] == 0
		l.state.AddLife(slot, max(it.Payload, 1))
		if s := l.ships[slot]; wasOut && s != nil && s.Destroyed() && !s.Respawning() {
			s.Destroy(max(l.spec.Timings.RespawnFrames, 1))
		}
	default:
		if kind, ok := itemEffects[it.Kind]; ok {
			l.grantEffect(slot, kind, l.spec.Items.EffectFrames)
		}
	}
}

// grantEffect starts a timed effect, or restarts it when slot already has it.
func (l *Loop) grantEffect(slot int, kind component.EffectKind, frames int) {
	frames = max(frames, 1)
	if e, ok := l.findEffect(slot, kind); ok {
		if ttl, ok := ecs.Get(l.world, e, component.TTLComponent.Kind()); ok {
			ttl.Frames = frames
			return
		}
	}

	e := ecs.CreateEntity(l.world)
	if err := ecs.Add(l.world, e, component.EffectComponent.Kind(), &component.Effect{Slot: slot, Kind: kind}); err != nil {
		l.log.Printf("encounter: add effect: %v", err)
		return
	}
	if err := ecs.Add(l.world, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames}); err != nil {
		l.log.Printf("encounter: add effect ttl: %v", err)
	}
}

func (l *Loop) findEffect(slot int, kind component.EffectKind) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(l.world, component.EffectComponent.Kind(), func(e ecs.Entity, eff *component.Effect) {
		if !found.Valid() && eff.Slot == slot && eff.Kind == kind {
			found = e
		}
	})
	return found, found.Valid()
}

// HasEffect reports whether slot has a running effect granted by item.
func (l *Loop) HasEffect(slot int, item ItemKind) bool {
	kind, ok := itemEffects[item]
	if !ok {
		return false
	}
	_, ok = l.findEffect(slot, kind)
	return ok
}

// EffectFrames returns the frames left on slot's effect, or zero.
func (l *Loop) EffectFrames(slot int, item ItemKind) int {
	kind, ok := itemEffects[item]
	if !ok {
		return 0
	}
	e, ok := l.findEffect(slot, kind)
	if !ok {
		return 0
	}
	if ttl, ok := ecs.Get(l.world, e, component.TTLComponent.Kind()); ok {
		return ttl.Frames
	}
	return 0
}
