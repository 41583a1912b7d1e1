package entity

import (
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs/component"
	"github.com/milk9111/pong/prefabs"
)

// Templates holds the shared geometry templates by name.
type Templates map[string]*component.Geometry

// BuildTemplates converts a geometry spec into shared templates.
func BuildTemplates(spec *prefabs.GeometrySpec) (Templates, error) {
	if spec == nil || len(spec.Templates) == 0 {
		return nil, fmt.Errorf("build templates: no templates defined")
	}

	names := make([]string, 0, len(spec.Templates))
	for name := range spec.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Templates, len(names))
	for _, name := range names {
		raw := spec.Templates[name]
		points := make([]cp.Vector, 0, len(raw))
		for _, p := range raw {
			points = append(points, cp.Vector{X: p.X, Y: p.Y})
		}
		g, err := component.NewGeometry(name, points)
		if err != nil {
			return nil, fmt.Errorf("build templates: %w", err)
		}
		out[name] = g
	}
	return out, nil
}
