package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/render"
)

// Body is the simulation state of one rectangular entity.
type Body struct {
	// Position is the bottom-left corner of the collision box in playfield units.
	Position cp.Vector

	// Width and Height size the collision box. They are not derived from Geometry.
	Width  float64
	Height float64

	// Speed is in playfield units per tick.
	Speed float64

	// Direction is in degrees, 0 along +x, counterclockwise. It is kept while
	// Speed is 0 so motion resumes along the last heading.
	Direction float64

	Geometry *Geometry
	Render   render.Handle
}

// MidY returns the vertical center of the collision box.
func (b *Body) MidY() float64 {
	return b.Position.Y + b.Height/2
}

// Bounds returns the collision box as a chipmunk bounding box.
func (b *Body) Bounds() cp.BB {
	return cp.BB{
		L: b.Position.X,
		B: b.Position.Y,
		R: b.Position.X + b.Width,
		T: b.Position.Y + b.Height,
	}
}
