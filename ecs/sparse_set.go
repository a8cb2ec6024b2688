package ecs

// sparseSet stores one component type keyed by entity slot. Removal keeps
// the dense arrays in insertion order so iteration is deterministic frame to
// frame.
type sparseSet struct {
	dense  []Entity
	values []any
	sparse []int
}

func (s *sparseSet) index(e Entity) int {
	id := int(e.id())
	if id <= 0 || id > len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1
	}
	return idx
}

func (s *sparseSet) has(e Entity) bool {
	return s.index(e) >= 0
}

func (s *sparseSet) get(e Entity) (any, bool) {
	idx := s.index(e)
	if idx < 0 {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet) set(e Entity, v any) {
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	if idx := s.index(e); idx >= 0 {
		s.values[idx] = v
		return
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[id-1] = len(s.dense) - 1
}

func (s *sparseSet) remove(e Entity) bool {
	idx := s.index(e)
	if idx < 0 {
		return false
	}
	copy(s.dense[idx:], s.dense[idx+1:])
	copy(s.values[idx:], s.values[idx+1:])
	last := len(s.dense) - 1
	s.values[last] = nil
	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[int(e.id())-1] = -1
	for i := idx; i < len(s.dense); i++ {
		s.sparse[int(s.dense[i].id())-1] = i
	}
	return true
}

func (s *sparseSet) len() int {
	return len(s.dense)
}
