package ecs

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/render"
)

type fakeAllocator struct {
	next     render.Handle
	sizes    map[render.Handle]int
	released map[render.Handle]int
	err      error
}

func newFakeAllocator() *fakeAllocator {
	return &fakeAllocator{
		sizes:    map[render.Handle]int{},
		released: map[render.Handle]int{},
	}
}

func (f *fakeAllocator) Allocate(n int) (render.Handle, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	f.sizes[f.next] = n
	return f.next, nil
}

func (f *fakeAllocator) Release(h render.Handle) {
	f.released[h]++
}

func mustGeometry(t *testing.T, name string, w, h float64) *component.Geometry {
	t.Helper()
	g, err := component.NewGeometry(name, []cp.Vector{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h},
		{X: 0, Y: 0}, {X: 0, Y: h}, {X: w, Y: h},
	})
	if err != nil {
		t.Fatalf("geometry: %v", err)
	}
	return g
}

func TestRegistryCreate(t *testing.T) {
	alloc := newFakeAllocator()
	r := NewRegistry(alloc)
	g := mustGeometry(t, "paddle", 48, 128)

	e, err := r.Create(cp.Vector{X: 1024, Y: 320}, 48, 128, g)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !e.Valid() {
		t.Fatalf("expected valid entity")
	}

	b := r.Body(e)
	if b == nil {
		t.Fatalf("body missing for %s", e)
	}
	if b.Speed != 0 || b.Direction != 0 {
		t.Fatalf("expected stationary body, got speed=%v dir=%v", b.Speed, b.Direction)
	}
	if b.Width != 48 || b.Height != 128 {
		t.Fatalf("size = %vx%v, want 48x128", b.Width, b.Height)
	}
	if b.Geometry != g {
		t.Fatalf("geometry must be shared, not copied")
	}
	if !b.Render.Valid() || alloc.sizes[b.Render] != 6 {
		t.Fatalf("render handle %d not allocated for 6 vertices", b.Render)
	}
}

func TestRegistryCreateErrors(t *testing.T) {
	t.Run("nil_geometry", func(t *testing.T) {
		r := NewRegistry(newFakeAllocator())
		if _, err := r.Create(cp.Vector{}, 1, 1, nil); !errors.Is(err, ErrNilGeometry) {
			t.Fatalf("expected ErrNilGeometry, got %v", err)
		}
		if r.Len() != 0 {
			t.Fatalf("failed create must not register a body")
		}
	})

	t.Run("allocator_failure", func(t *testing.T) {
		alloc := newFakeAllocator()
		alloc.err = render.ErrInvalidVertexCount
		r := NewRegistry(alloc)
		_, err := r.Create(cp.Vector{}, 1, 1, mustGeometry(t, "ball", 32, 32))
		if !errors.Is(err, render.ErrInvalidVertexCount) {
			t.Fatalf("expected wrapped allocator error, got %v", err)
		}
	})

	t.Run("after_teardown", func(t *testing.T) {
		r := NewRegistry(newFakeAllocator())
		r.Teardown()
		if _, err := r.Create(cp.Vector{}, 1, 1, mustGeometry(t, "ball", 32, 32)); !errors.Is(err, ErrRegistryEnded) {
			t.Fatalf("expected ErrRegistryEnded, got %v", err)
		}
	})
}

func TestRegistryOrderAndGrowth(t *testing.T) {
	r := NewRegistry(newFakeAllocator())
	g := mustGeometry(t, "ball", 32, 32)

	const n = 25
	ents := make([]Entity, 0, n)
	prevCap := r.Cap()
	for i := 0; i < n; i++ {
		e, err := r.Create(cp.Vector{X: float64(i)}, 32, 32, g)
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		ents = append(ents, e)
		if c := r.Cap(); c != prevCap {
			if c < 2*prevCap {
				t.Fatalf("capacity grew from %d to %d, want at least double", prevCap, c)
			}
			prevCap = c
		}
	}
	if r.Len() != n {
		t.Fatalf("len = %d, want %d", r.Len(), n)
	}

	for pass := 0; pass < 3; pass++ {
		i := 0
		r.ForEach(func(e Entity, b *component.Body) {
			if e != ents[i] {
				t.Fatalf("pass %d: visit %d got entity %s, want %s", pass, i, e, ents[i])
			}
			if b.Position.X != float64(i) {
				t.Fatalf("pass %d: visit %d got body at x=%v", pass, i, b.Position.X)
			}
			i++
		})
		if i != n {
			t.Fatalf("pass %d visited %d bodies, want %d", pass, i, n)
		}
	}
}

func TestRegistryForEachDoesNotAllocate(t *testing.T) {
	r := NewRegistry(newFakeAllocator())
	g := mustGeometry(t, "ball", 32, 32)
	for i := 0; i < 3; i++ {
		if _, err := r.Create(cp.Vector{}, 32, 32, g); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	sum := 0.0
	visit := func(_ Entity, b *component.Body) { sum += b.Width }
	allocs := testing.AllocsPerRun(100, func() {
		r.ForEach(visit)
	})
	if allocs != 0 {
		t.Fatalf("ForEach allocated %v times per run", allocs)
	}
}

func TestRegistryTeardown(t *testing.T) {
	alloc := newFakeAllocator()
	r := NewRegistry(alloc)
	g := mustGeometry(t, "paddle", 48, 128)

	var handles []render.Handle
	for i := 0; i < 3; i++ {
		e, err := r.Create(cp.Vector{}, 48, 128, g)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		handles = append(handles, r.Body(e).Render)
	}

	r.Teardown()
	r.Teardown()

	for _, h := range handles {
		if alloc.released[h] != 1 {
			t.Fatalf("handle %d released %d times, want 1", h, alloc.released[h])
		}
	}
	if r.Len() != 0 {
		t.Fatalf("registry should be empty after teardown")
	}
	if r.Body(1) != nil {
		t.Fatalf("handles must not resolve after teardown")
	}
}
