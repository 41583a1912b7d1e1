package system

import (
	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/input"
)

// FrameController runs one simulation tick per rendered frame: drain input,
// then run the scheduled systems.
type FrameController struct {
	input     input.Backend
	controls  *Controls
	reloads   <-chan *Controls
	scheduler *ecs.Scheduler
	pending   []input.Event
}

// NewFrameController creates a controller that runs systems in order after
// input has been applied.
func NewFrameController(in input.Backend, controls *Controls, systems ...ecs.System) *FrameController {
	return &FrameController{
		input:     in,
		controls:  controls,
		scheduler: ecs.NewScheduler(systems...),
		pending:   make([]input.Event, 0, 16),
	}
}

// NewDefaultFrameController wires kinematics, then collision, then any extra
// systems such as audio cues.
func NewDefaultFrameController(in input.Backend, controls *Controls, extra ...ecs.System) *FrameController {
	systems := []ecs.System{NewKinematicsSystem(), NewCollisionSystem()}
	for _, s := range extra {
		if s != nil {
			systems = append(systems, s)
		}
	}
	return NewFrameController(in, controls, systems...)
}

// WatchControls makes the controller swap in tables received on reloads.
func (f *FrameController) WatchControls(reloads <-chan *Controls) {
	if f == nil {
		return
	}
	f.reloads = reloads
}

// Controls returns the active key table.
func (f *FrameController) Controls() *Controls {
	if f == nil {
		return nil
	}
	return f.controls
}

// Tick advances w by one step. It returns false once a quit event arrives;
// events after the quit and the rest of the tick are skipped.
func (f *FrameController) Tick(w *ecs.World) bool {
	if f == nil || w == nil {
		return false
	}

	select {
	case c, ok := <-f.reloads:
		if !ok {
			f.reloads = nil
		} else if c != nil {
			f.controls = c
		}
	default:
	}

	if f.input != nil {
		f.pending = f.input.Poll(f.pending[:0])
	}
	for _, ev := range f.pending {
		if ev.Type == input.EventQuit {
			return false
		}
		f.controls.Apply(w, ev)
	}

	f.scheduler.Update(w)
	return true
}
