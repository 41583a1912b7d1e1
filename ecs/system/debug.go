package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/component"
	"golang.org/x/image/colornames"
)

const debugStroke = 2

// DrawCollisionDebug outlines every body's collision box, which may differ
// from its drawn geometry, and prints ball state.
func DrawCollisionDebug(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	bounds := screen.Bounds()
	sx := float64(bounds.Dx()) / w.Playfield.Width
	sy := float64(bounds.Dy()) / w.Playfield.Height

	w.Registry().ForEach(func(_ ecs.Entity, b *component.Body) {
		bb := b.Bounds()
		// Playfield y grows upward; screen y grows downward.
		x := float32(bb.L * sx)
		y := float32(float64(bounds.Dy()) - bb.T*sy)
		vector.StrokeRect(screen, x, y, float32(b.Width*sx), float32(b.Height*sy), debugStroke, colornames.Red, false)
	})

	text := fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if ball := w.Body(w.Ball); ball != nil {
		text += fmt.Sprintf("\nBall: (%.0f, %.0f) dir=%.0f speed=%.0f", ball.Position.X, ball.Position.Y, ball.Direction, ball.Speed)
	}
	ebitenutil.DebugPrint(screen, text)
}
