package input

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ErrNoObservation is returned when a script has nothing to observe.
var ErrNoObservation = errors.New("input: script needs an observation source")

// Observation is the world state a script sees each poll.
type Observation struct {
	BallX        float64
	BallY        float64
	BallSize     float64
	PaddleY      float64
	PaddleHeight float64
	FieldHeight  float64
}

var scriptGlobals = []string{
	"ball_x",
	"ball_y",
	"ball_size",
	"paddle_y",
	"paddle_height",
	"field_height",
}

// Script drives one paddle from a tengo program. The program reads the
// observation globals and assigns "up", "down" or "" to move. Changes of move
// are reported as key transitions on the bound keys.
type Script struct {
	compiled *tengo.Compiled
	observe  func() Observation
	up, down Key
	held     Key
	failed   bool
}

// NewScript compiles src once for per-poll execution.
func NewScript(src []byte, up, down Key, observe func() Observation) (*Script, error) {
	if observe == nil {
		return nil, ErrNoObservation
	}

	script := tengo.NewScript(src)
	for _, name := range scriptGlobals {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("input: script global %s: %w", name, err)
		}
	}
	if err := script.Add("move", ""); err != nil {
		return nil, fmt.Errorf("input: script global move: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script: %w", err)
	}

	return &Script{
		compiled: compiled,
		observe:  observe,
		up:       up,
		down:     down,
	}, nil
}

func (s *Script) Poll(dst []Event) []Event {
	if s == nil || s.failed {
		return dst
	}

	want, err := s.run(s.observe())
	if err != nil {
		// Logged once; the held key is released and the script stays off.
		log.Printf("pong: input script stopped: %v", err)
		s.failed = true
		if s.held != KeyUnknown {
			dst = append(dst, Released(s.held))
			s.held = KeyUnknown
		}
		return dst
	}

	if want == s.held {
		return dst
	}
	if s.held != KeyUnknown {
		dst = append(dst, Released(s.held))
	}
	if want != KeyUnknown {
		dst = append(dst, Pressed(want))
	}
	s.held = want
	return dst
}

func (s *Script) run(obs Observation) (Key, error) {
	values := map[string]float64{
		"ball_x":        obs.BallX,
		"ball_y":        obs.BallY,
		"ball_size":     obs.BallSize,
		"paddle_y":      obs.PaddleY,
		"paddle_height": obs.PaddleHeight,
		"field_height":  obs.FieldHeight,
	}
	for name, v := range values {
		if err := s.compiled.Set(name, v); err != nil {
			return KeyUnknown, err
		}
	}
	if err := s.compiled.Set("move", ""); err != nil {
		return KeyUnknown, err
	}
	if err := s.compiled.Run(); err != nil {
		return KeyUnknown, err
	}

	switch move := strings.ToLower(strings.TrimSpace(s.compiled.Get("move").String())); move {
	case "up":
		return s.up, nil
	case "down":
		return s.down, nil
	case "":
		return KeyUnknown, nil
	default:
		return KeyUnknown, fmt.Errorf("script set move to %q", move)
	}
}
