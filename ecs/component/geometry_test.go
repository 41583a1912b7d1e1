package component

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestNewGeometry(t *testing.T) {
	tri := []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}

	cases := []struct {
		name      string
		points    []cp.Vector
		triangles int
		wantErr   bool
	}{
		{"one_triangle", tri, 1, false},
		{"two_triangles", append(append([]cp.Vector{}, tri...), tri...), 2, false},
		{"empty", nil, 0, true},
		{"dangling_point", append(append([]cp.Vector{}, tri...), cp.Vector{X: 2}), 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewGeometry(c.name, c.points)
			if c.wantErr {
				if !errors.Is(err, ErrGeometryNotTriangles) {
					t.Fatalf("expected ErrGeometryNotTriangles, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Triangles() != c.triangles {
				t.Fatalf("triangles = %d, want %d", g.Triangles(), c.triangles)
			}
		})
	}
}

func TestNewGeometryCopiesPoints(t *testing.T) {
	src := []cp.Vector{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	g, err := NewGeometry("tri", src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	src[0].X = 99
	if g.Points[0].X != 0 {
		t.Fatalf("template must not alias caller storage")
	}
}

func TestBodyBounds(t *testing.T) {
	b := &Body{Position: cp.Vector{X: 90, Y: 90}, Width: 48, Height: 128}
	bb := b.Bounds()
	if bb.L != 90 || bb.B != 90 || bb.R != 138 || bb.T != 218 {
		t.Fatalf("bounds = %+v", bb)
	}
	if b.MidY() != 154 {
		t.Fatalf("MidY = %v, want 154", b.MidY())
	}
}
