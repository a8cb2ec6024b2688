package ecs

import "fmt"

type entityID uint32
type generation uint32

// Entity is a handle to a world slot. The generation is bumped whenever the
// slot is freed, so a handle kept past DestroyEntity stops matching.
type Entity struct {
	slot entityID
	gen  generation
}

func makeEntity(id entityID, gen generation) Entity {
	return Entity{slot: id, gen: gen}
}

func (e Entity) id() entityID {
	return e.slot
}

func (e Entity) generation() generation {
	return e.gen
}

func (e Entity) String() string {
	return fmt.Sprintf("%d#%d", e.slot, e.gen)
}

// Valid is false for the zero Entity.
func (e Entity) Valid() bool {
	return e.slot > 0
}
