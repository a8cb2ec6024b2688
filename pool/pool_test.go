package pool

import "testing"

type shot struct {
	x, y int
}

func TestPoolReusesReleasedInstances(t *testing.T) {
	p := New(func() *shot { return &shot{} })

	a := p.Acquire()
	b := p.Acquire()
	if a == b {
		t.Fatalf("expected distinct instances from an empty pool")
	}
	if p.Allocated() != 2 {
		t.Fatalf("allocated = %d, want 2", p.Allocated())
	}

	p.Release(a, nil, b)
	if p.Available() != 2 {
		t.Fatalf("available = %d, want 2", p.Available())
	}

	c := p.Acquire()
	if c != b {
		t.Fatalf("expected the last released instance back")
	}
	d := p.Acquire()
	if d != a {
		t.Fatalf("expected the first released instance back")
	}
	if p.Allocated() != 2 {
		t.Fatalf("steady state should not allocate, allocated = %d", p.Allocated())
	}
}

func TestPoolDefaultConstructor(t *testing.T) {
	p := New[shot](nil)
	v := p.Acquire()
	if v == nil {
		t.Fatalf("expected a zero value instance")
	}
	v.x = 3
	p.Release(v)
	if got := p.Acquire(); got.x != 3 {
		t.Fatalf("pool must not reset instances, x = %d", got.x)
	}
}
