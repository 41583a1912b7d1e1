package ecs

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/render"
)

const initialRegistryCapacity = 10

var (
	ErrNilGeometry   = errors.New("ecs: geometry is nil")
	ErrRegistryEnded = errors.New("ecs: registry torn down")
)

// Registry owns every simulated body in insertion order. Bodies are never
// removed; the set is closed once setup finishes.
type Registry struct {
	alloc  render.Allocator
	bodies []*component.Body
	closed bool
}

// NewRegistry creates an empty registry that takes render storage from alloc.
func NewRegistry(alloc render.Allocator) *Registry {
	return &Registry{
		alloc:  alloc,
		bodies: make([]*component.Body, 0, initialRegistryCapacity),
	}
}

// Create allocates a stationary body and appends it to the registry.
func (r *Registry) Create(pos cp.Vector, width, height float64, g *component.Geometry) (Entity, error) {
	if r == nil || r.closed {
		return 0, ErrRegistryEnded
	}
	if g == nil {
		return 0, ErrNilGeometry
	}

	var handle render.Handle
	if r.alloc != nil {
		h, err := r.alloc.Allocate(len(g.Points))
		if err != nil {
			return 0, fmt.Errorf("ecs: create %s body: %w", g.Name, err)
		}
		handle = h
	}

	r.grow()
	r.bodies = append(r.bodies, &component.Body{
		Position: pos,
		Width:    width,
		Height:   height,
		Geometry: g,
		Render:   handle,
	})
	return Entity(len(r.bodies)), nil
}

// grow doubles capacity when the backing array is full.
func (r *Registry) grow() {
	if len(r.bodies) < cap(r.bodies) {
		return
	}
	next := make([]*component.Body, len(r.bodies), max(2*cap(r.bodies), initialRegistryCapacity))
	copy(next, r.bodies)
	r.bodies = next
}

// Body returns the body behind e, or nil for an unknown handle.
func (r *Registry) Body(e Entity) *component.Body {
	if r == nil || !e.Valid() || e.index() >= len(r.bodies) {
		return nil
	}
	return r.bodies[e.index()]
}

// Len returns the number of registered bodies.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.bodies)
}

// Cap returns the current backing capacity.
func (r *Registry) Cap() int {
	if r == nil {
		return 0
	}
	return cap(r.bodies)
}

// ForEach visits bodies in insertion order.
func (r *Registry) ForEach(fn func(Entity, *component.Body)) {
	if r == nil || fn == nil {
		return
	}
	for i, b := range r.bodies {
		fn(Entity(i+1), b)
	}
}

// Teardown releases every body's render storage and drops the bodies.
func (r *Registry) Teardown() {
	if r == nil || r.closed {
		return
	}
	for _, b := range r.bodies {
		if r.alloc != nil && b.Render.Valid() {
			r.alloc.Release(b.Render)
		}
	}
	r.bodies = nil
	r.closed = true
}
