// Package component declares the component types stored in the encounter's
// ECS world.
package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
)

type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind keys one component store. The zero value is invalid.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Name() string {
	return k.name
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is declared once per component type at package level,
// e.g. var TTLComponent = NewComponent[TTL]("ttl").
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any](name string) ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(lastID.Add(1)), name: name}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
