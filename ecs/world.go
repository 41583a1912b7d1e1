package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/render"
)

// Playfield is the simulated rectangle [0, Width) x [0, Height).
type Playfield struct {
	Width  float64
	Height float64

	// Respawn is where the ball restarts after leaving the field sideways.
	Respawn cp.Vector
}

// Viewport returns the render mapping for the playfield.
func (p Playfield) Viewport() render.Viewport {
	return render.Viewport{Width: p.Width, Height: p.Height}
}

// World owns the registry, the playfield and the named gameplay bodies.
type World struct {
	Playfield Playfield

	RightPaddle Entity
	LeftPaddle  Entity
	Ball        Entity

	registry *Registry
	events   EventQueue
}

// NewWorld creates an empty world whose bodies draw through alloc.
func NewWorld(field Playfield, alloc render.Allocator) *World {
	return &World{
		Playfield: field,
		registry:  NewRegistry(alloc),
	}
}

// Registry returns the instance registry.
func (w *World) Registry() *Registry {
	if w == nil {
		return nil
	}
	return w.registry
}

// Body returns the body behind e.
func (w *World) Body(e Entity) *component.Body {
	if w == nil {
		return nil
	}
	return w.registry.Body(e)
}

// Events returns the tick event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Teardown releases all bodies. It is safe to call more than once.
func (w *World) Teardown() {
	if w == nil {
		return
	}
	w.registry.Teardown()
	w.RightPaddle, w.LeftPaddle, w.Ball = 0, 0, 0
}
