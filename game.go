package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/render"
	"golang.org/x/image/colornames"
)

// Game runs one simulation tick per rendered frame.
type Game struct {
	debug bool

	world    *ecs.World
	frame    *system.FrameController
	backend  *render.Ebiten
	renderer *system.RenderSystem
}

func NewGame(world *ecs.World, frame *system.FrameController, backend *render.Ebiten, debug bool) *Game {
	return &Game{
		debug:    debug,
		world:    world,
		frame:    frame,
		backend:  backend,
		renderer: system.NewRenderSystem(backend),
	}
}

func (g *Game) Update() error {
	if !g.frame.Tick(g.world) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.White)

	g.backend.Begin(screen)
	g.renderer.Draw(g.world)

	if g.debug {
		system.DrawCollisionDebug(g.world, screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.world.Playfield.Width), int(g.world.Playfield.Height)
}
