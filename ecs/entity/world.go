package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/render"
)

const (
	RightPaddlePrefab = "right_paddle.yaml"
	LeftPaddlePrefab  = "left_paddle.yaml"
	BallPrefab        = "ball.yaml"
)

// BuildBody creates one body from a prefab spec and registers it.
func BuildBody(w *ecs.World, spec *prefabs.BodySpec, templates Templates) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build body: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("build body: spec is nil")
	}
	g, ok := templates[spec.Geometry]
	if !ok {
		return 0, fmt.Errorf("build body %q: unknown geometry %q", spec.Name, spec.Geometry)
	}

	pos := cp.Vector{X: spec.Transform.X, Y: spec.Transform.Y}
	e, err := w.Registry().Create(pos, spec.Collider.Width, spec.Collider.Height, g)
	if err != nil {
		return 0, fmt.Errorf("build body %q: %w", spec.Name, err)
	}

	b := w.Body(e)
	b.Speed = spec.Speed
	b.Direction = spec.Direction
	return e, nil
}

// BuildWorld loads the playfield and creates the right paddle, the left
// paddle and the ball, in that order. Any error leaves the game unplayable
// and should end the process.
func BuildWorld(alloc render.Allocator) (*ecs.World, error) {
	fieldSpec, err := prefabs.LoadPlayfieldSpec()
	if err != nil {
		return nil, err
	}
	geoSpec, err := prefabs.LoadGeometrySpec()
	if err != nil {
		return nil, err
	}
	templates, err := BuildTemplates(geoSpec)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld(ecs.Playfield{
		Width:   fieldSpec.Width,
		Height:  fieldSpec.Height,
		Respawn: cp.Vector{X: fieldSpec.Respawn.X, Y: fieldSpec.Respawn.Y},
	}, alloc)

	named := []struct {
		prefab string
		dst    *ecs.Entity
	}{
		{RightPaddlePrefab, &w.RightPaddle},
		{LeftPaddlePrefab, &w.LeftPaddle},
		{BallPrefab, &w.Ball},
	}
	for _, n := range named {
		spec, err := prefabs.LoadBodySpec(n.prefab)
		if err != nil {
			w.Teardown()
			return nil, err
		}
		e, err := BuildBody(w, spec, templates)
		if err != nil {
			w.Teardown()
			return nil, err
		}
		*n.dst = e
	}
	return w, nil
}
