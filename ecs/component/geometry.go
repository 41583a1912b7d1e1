package component

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
)

var ErrGeometryNotTriangles = errors.New("component: geometry point count is not a multiple of 3")

// Geometry is a model-space triangle list shared by every body of one kind.
// Points are read-only after NewGeometry returns.
type Geometry struct {
	Name   string
	Points []cp.Vector
}

// NewGeometry copies points into a template. Each consecutive triple is one
// filled triangle.
func NewGeometry(name string, points []cp.Vector) (*Geometry, error) {
	if len(points) == 0 || len(points)%3 != 0 {
		return nil, fmt.Errorf("geometry %q has %d points: %w", name, len(points), ErrGeometryNotTriangles)
	}
	return &Geometry{
		Name:   name,
		Points: append([]cp.Vector(nil), points...),
	}, nil
}

// Triangles returns the number of triangles in the template.
func (g *Geometry) Triangles() int {
	if g == nil {
		return 0
	}
	return len(g.Points) / 3
}
