package system

import "github.com/milk9111/pong/ecs"

// CuePlayer plays a short sound for a simulation event.
type CuePlayer interface {
	Play(kind ecs.EventKind)
}

// AudioSystem plays a cue for every event raised earlier in the tick. It must
// run after the collision system.
type AudioSystem struct {
	cues CuePlayer
}

func NewAudioSystem(cues CuePlayer) *AudioSystem {
	if cues == nil {
		return nil
	}
	return &AudioSystem{cues: cues}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	for _, ev := range w.Events().Pending() {
		a.cues.Play(ev.Kind)
	}
}
