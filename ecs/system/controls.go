package system

import (
	"errors"
	"fmt"
	"log"

	"github.com/milk9111/pong/ecs"
	"github.com/milk9111/pong/input"
	"github.com/milk9111/pong/prefabs"
)

var ErrInvalidControls = errors.New("system: invalid controls")

// Side names one of the two paddles.
type Side int

const (
	SideRight Side = iota + 1
	SideLeft
)

func parseSide(name string) (Side, bool) {
	switch name {
	case "right":
		return SideRight, true
	case "left":
		return SideLeft, true
	}
	return 0, false
}

type binding struct {
	key  input.Key
	edge input.EventType
}

type effect struct {
	side      Side
	speed     float64
	direction float64
	// heldOnly skips the effect unless the paddle still moves along direction,
	// so releasing one key does not stop a paddle another key is driving.
	heldOnly bool
}

// Controls maps key transitions to paddle speed and direction changes.
type Controls struct {
	table map[binding]effect
}

// NewControls builds the lookup table from a controls spec. Each binding
// yields a key-down entry that starts the paddle and a key-up entry that stops
// it.
func NewControls(spec *prefabs.ControlsSpec) (*Controls, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spec", ErrInvalidControls)
	}
	if spec.PaddleSpeed <= 0 {
		return nil, fmt.Errorf("%w: paddle_speed %v must be positive", ErrInvalidControls, spec.PaddleSpeed)
	}

	c := &Controls{table: make(map[binding]effect, 2*len(spec.Bindings))}
	for i, b := range spec.Bindings {
		key := input.ParseKey(b.Key)
		if key == input.KeyUnknown {
			return nil, fmt.Errorf("%w: binding %d: unknown key %q", ErrInvalidControls, i, b.Key)
		}
		side, ok := parseSide(b.Paddle)
		if !ok {
			return nil, fmt.Errorf("%w: binding %d: unknown paddle %q", ErrInvalidControls, i, b.Paddle)
		}
		down := binding{key: key, edge: input.EventKeyDown}
		if _, dup := c.table[down]; dup {
			return nil, fmt.Errorf("%w: key %s bound twice", ErrInvalidControls, key)
		}
		c.table[down] = effect{side: side, speed: spec.PaddleSpeed, direction: b.Direction}
		c.table[binding{key: key, edge: input.EventKeyUp}] = effect{side: side, speed: 0, direction: b.Direction, heldOnly: true}
	}
	return c, nil
}

// LoadControls builds controls from controls.yaml.
func LoadControls() (*Controls, error) {
	spec, err := prefabs.LoadControlsSpec()
	if err != nil {
		return nil, err
	}
	return NewControls(spec)
}

// Apply performs the effect bound to ev. Repeats, unbound keys and quit
// events do nothing.
func (c *Controls) Apply(w *ecs.World, ev input.Event) {
	if c == nil || w == nil || ev.Repeat {
		return
	}
	eff, ok := c.table[binding{key: ev.Key, edge: ev.Type}]
	if !ok {
		return
	}

	paddle := w.LeftPaddle
	if eff.side == SideRight {
		paddle = w.RightPaddle
	}
	body := w.Body(paddle)
	if body == nil {
		return
	}
	if eff.heldOnly && body.Direction != eff.direction {
		return
	}
	body.Speed = eff.speed
	body.Direction = eff.direction
}

// ReloadControls rebuilds controls whenever controls.yaml shows up on names.
// Results are delivered on the returned channel, which the frame controller
// drains at the start of a tick. Parse failures keep the previous table.
func ReloadControls(names <-chan string, errs <-chan error) <-chan *Controls {
	out := make(chan *Controls, 1)
	go func() {
		defer close(out)
		for names != nil || errs != nil {
			select {
			case name, ok := <-names:
				if !ok {
					names = nil
					continue
				}
				if name != "controls.yaml" {
					continue
				}
				controls, err := LoadControls()
				if err != nil {
					log.Printf("pong: reload %s: %v", name, err)
					continue
				}
				// Replace a reload the frame controller has not picked up yet.
				select {
				case <-out:
				default:
				}
				out <- controls
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				log.Printf("pong: prefab watcher: %v", err)
			}
		}
	}()
	return out
}
