package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// Integrate advances b one fixed Euler step along its heading. There is no
// delta-time scaling: speed is already in units per tick.
func Integrate(b *component.Body) {
	if b == nil {
		return
	}
	rad := b.Direction * math.Pi / 180
	b.Position = b.Position.Add(cp.ForAngle(rad).Mult(b.Speed))
}

// KinematicsSystem integrates every registered body once per tick.
type KinematicsSystem struct{}

func NewKinematicsSystem() *KinematicsSystem {
	return &KinematicsSystem{}
}

func (k *KinematicsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	w.Registry().ForEach(integrateEntity)
}

func integrateEntity(_ ecs.Entity, b *component.Body) {
	Integrate(b)
}
