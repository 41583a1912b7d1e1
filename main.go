package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/ecs/entity"
	"github.com/milk9111/pong/ecs/system"
	"github.com/milk9111/pong/input"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/render"
	"golang.org/x/image/colornames"
)

type options struct {
	debug  bool
	ai     bool
	script string
	watch  bool
	mute   bool
	volume float64
}

func main() {
	var opts options
	flag.BoolVar(&opts.debug, "debug", false, "draw collision boxes and timing")
	flag.BoolVar(&opts.ai, "ai", false, "let a script drive the left paddle")
	flag.StringVar(&opts.script, "script", "follow_ball", "script in prefabs/scripts used with -ai")
	flag.BoolVar(&opts.watch, "watch", false, "reload prefabs/controls.yaml when it changes on disk")
	flag.BoolVar(&opts.mute, "mute", false, "disable sound cues")
	flag.Float64Var(&opts.volume, "volume", 0.5, "sound cue volume between 0 and 1")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	shader, err := assets.LoadShader(assets.FillShader)
	if err != nil {
		return err
	}
	backend := render.NewEbiten(shader, colornames.Black)

	world, err := entity.BuildWorld(backend)
	if err != nil {
		return fmt.Errorf("pong: setup: %w", err)
	}
	defer world.Teardown()

	controls, err := system.LoadControls()
	if err != nil {
		return fmt.Errorf("pong: setup: %w", err)
	}

	backends := []input.Backend{input.NewKeyboard()}
	if opts.ai {
		src, err := prefabs.LoadScript(opts.script)
		if err != nil {
			return fmt.Errorf("pong: load script %s: %w", opts.script, err)
		}
		script, err := input.NewScript(src, input.KeyW, input.KeyS, observeLeft(world))
		if err != nil {
			return err
		}
		backends = append(backends, script)
	}

	var extra []ecs.System
	if !opts.mute {
		cues := assets.NewCues(opts.volume)
		defer cues.Close()
		extra = append(extra, system.NewAudioSystem(cues))
	}

	frame := system.NewDefaultFrameController(input.Merge(backends...), controls, extra...)

	if opts.watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir())
		if err != nil {
			log.Printf("pong: watch %s disabled: %v", prefabs.Dir(), err)
		} else {
			defer watcher.Close()
			frame.WatchControls(system.ReloadControls(watcher.Events, watcher.Errors))
		}
	}

	ebiten.SetWindowSize(int(world.Playfield.Width), int(world.Playfield.Height))
	ebiten.SetWindowTitle("pong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	return ebiten.RunGame(NewGame(world, frame, backend, opts.debug))
}

// observeLeft reports the ball and left paddle to an input script.
func observeLeft(w *ecs.World) func() input.Observation {
	return func() input.Observation {
		ball := w.Body(w.Ball)
		paddle := w.Body(w.LeftPaddle)
		if ball == nil || paddle == nil {
			return input.Observation{}
		}
		return input.Observation{
			BallX:        ball.Position.X,
			BallY:        ball.Position.Y,
			BallSize:     ball.Height,
			PaddleY:      paddle.Position.Y,
			PaddleHeight: paddle.Height,
			FieldHeight:  w.Playfield.Height,
		}
	}
}
