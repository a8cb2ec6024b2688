// Package pool provides an arena/free-list allocator for short-lived game
// objects such as bullets and pickups.
package pool

// Pool hands out reusable instances of T. It is not safe for concurrent use;
// the encounter loop is its only writer.
type Pool[T any] struct {
	newFn     func() *T
	free      []*T
	allocated int
}

// New creates a pool that allocates fresh instances with newFn. A nil newFn
// falls back to new(T).
func New[T any](newFn func() *T) *Pool[T] {
	if newFn == nil {
		newFn = func() *T { return new(T) }
	}
	return &Pool[T]{newFn: newFn}
}

// Acquire returns the most recently released instance, or grows the arena
// when the free list is empty. Callers reset the returned value themselves.
func (p *Pool[T]) Acquire() *T {
	if n := len(p.free); n > 0 {
		v := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return v
	}
	p.allocated++
	return p.newFn()
}

// Release returns a batch of instances to the free list. Nil entries are
// ignored.
func (p *Pool[T]) Release(batch ...*T) {
	for _, v := range batch {
		if v == nil {
			continue
		}
		p.free = append(p.free, v)
	}
}

// Allocated is the number of instances the pool has ever created.
func (p *Pool[T]) Allocated() int {
	return p.allocated
}

// Available is the number of instances waiting on the free list.
func (p *Pool[T]) Available() int {
	return len(p.free)
}
