package render

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var ErrInvalidVertexCount = errors.New("render: vertex count must be a positive multiple of 3")

// Handle identifies per-body vertex storage owned by a backend.
type Handle int

// Valid reports whether h was returned by an Allocate call.
func (h Handle) Valid() bool {
	return h > 0
}

// Allocator hands out vertex storage once per body.
type Allocator interface {
	Allocate(vertexCount int) (Handle, error)
	Release(h Handle)
}

// Backend uploads normalized device space triangles and draws them.
type Backend interface {
	Allocator
	UploadAndDraw(h Handle, ndc []cp.Vector)
}

// Viewport is the playfield extent mapped onto [-1, 1] on both axes.
type Viewport struct {
	Width  float64
	Height float64
}

// ToNDC maps a playfield point into normalized device space.
func (v Viewport) ToNDC(p cp.Vector) cp.Vector {
	hw := v.Width / 2
	hh := v.Height / 2
	return cp.Vector{X: (p.X - hw) / hw, Y: (p.Y - hh) / hh}
}
