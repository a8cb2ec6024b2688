package ecs

import "github.com/milk9111/bossfight/ecs/component"

// ForEach visits every entity carrying kind in insertion order. The callback
// may add, remove or destroy entities; it sees the set as it was when the
// iteration started.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	if s == nil || s.len() == 0 {
		return
	}
	ents := append([]Entity(nil), s.dense...)
	for _, e := range ents {
		v, ok := Get(w, e, kind)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits entities carrying both kinds, ordered by the first kind.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// First returns the earliest entity carrying kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s == nil || s.len() == 0 {
		return Entity{}, false
	}
	return s.dense[0], true
}

// Count returns the number of entities carrying kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	s := w.store(kind.ID(), false)
	if s == nil {
		return 0
	}
	return s.len()
}
