package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/render"
)

// RenderSystem hands every registered body to a render backend in registry
// order.
type RenderSystem struct {
	backend  render.Backend
	viewport render.Viewport
	scratch  []cp.Vector
}

func NewRenderSystem(backend render.Backend) *RenderSystem {
	return &RenderSystem{backend: backend}
}

// Draw recomputes world-space points from each body's template and position,
// maps them into device space and uploads them. Templates are never modified.
func (r *RenderSystem) Draw(w *ecs.World) {
	if r == nil || r.backend == nil || w == nil {
		return
	}
	r.viewport = w.Playfield.Viewport()
	w.Registry().ForEach(r.drawBody)
}

func (r *RenderSystem) drawBody(_ ecs.Entity, b *component.Body) {
	if b.Geometry == nil || !b.Render.Valid() {
		return
	}
	r.scratch = WorldPoints(r.scratch[:0], b)
	for i, p := range r.scratch {
		r.scratch[i] = r.viewport.ToNDC(p)
	}
	r.backend.UploadAndDraw(b.Render, r.scratch)
}

// WorldPoints appends b's template points offset by its position to dst.
func WorldPoints(dst []cp.Vector, b *component.Body) []cp.Vector {
	if b == nil || b.Geometry == nil {
		return dst
	}
	for _, p := range b.Geometry.Points {
		dst = append(dst, p.Add(b.Position))
	}
	return dst
}
