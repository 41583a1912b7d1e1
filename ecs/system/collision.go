package system

import (
	"math"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
)

// maxBounceDeflection is the largest angle, in degrees, a paddle hit bends the
// ball away from straight across.
const maxBounceDeflection = 30

// Overlap reports whether a's box is touching b's box using an
// asymmetric test. a's left edge must lie strictly inside b's
// horizontal span, so a sitting exactly on b's left edge or left of it never
// overlaps even when the boxes intersect. Overlap(a, b) and Overlap(b, a)
// generally differ; the ball is always passed first.
func Overlap(a, b *component.Body) bool {
	return a.Position.X < b.Position.X+b.Width &&
		a.Position.X > b.Position.X &&
		a.Position.Y+a.Height > b.Position.Y &&
		a.Position.Y < b.Position.Y+b.Height
}

// BounceOffset is the deflection in whole degrees for a ball striking paddle,
// scaled by how far the ball's y sits from the paddle's vertical center.
// Fractions are truncated toward zero.
func BounceOffset(ball, paddle *component.Body) float64 {
	half := paddle.Height / 2
	return math.Trunc((ball.Position.Y - paddle.MidY()) / half * maxBounceDeflection)
}

// CollisionSystem resolves the ball against both paddles and the playfield
// edges. It only ever writes the ball's direction and position.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// Update applies the rules in a fixed order. Several may fire in one tick;
// the last one to write direction wins.
func (c *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ball := w.Body(w.Ball)
	if ball == nil {
		return
	}
	events := w.Events()

	if right := w.Body(w.RightPaddle); right != nil && Overlap(ball, right) {
		ball.Direction = 180 - BounceOffset(ball, right)
		events.Push(ecs.Event{Kind: ecs.EventPaddleHit, Entity: w.RightPaddle})
	}
	if left := w.Body(w.LeftPaddle); left != nil && Overlap(ball, left) {
		ball.Direction = 0 + BounceOffset(ball, left)
		events.Push(ecs.Event{Kind: ecs.EventPaddleHit, Entity: w.LeftPaddle})
	}

	field := w.Playfield
	// A quarter turn, not a mirror reflection.
	if ball.Position.Y < 0 {
		ball.Direction += 90
		events.Push(ecs.Event{Kind: ecs.EventWallHit, Entity: w.Ball})
	} else if ball.Position.Y > field.Height {
		ball.Direction -= 90
		events.Push(ecs.Event{Kind: ecs.EventWallHit, Entity: w.Ball})
	}

	if ball.Position.X > field.Width || ball.Position.X < 0 {
		ball.Position = field.Respawn
		ball.Direction = 0
		events.Push(ecs.Event{Kind: ecs.EventReset, Entity: w.Ball})
	}
}
