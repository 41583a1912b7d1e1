package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyArrowUp:   KeyUp,
	ebiten.KeyArrowDown: KeyDown,
	ebiten.KeyW:         KeyW,
	ebiten.KeyS:         KeyS,
}

// Keyboard turns ebiten key transitions into events. Window close and Escape
// produce Quit.
type Keyboard struct {
	pressed  []ebiten.Key
	released []ebiten.Key
}

// NewKeyboard creates a keyboard backend. It asks ebiten to hand window
// close requests to the game so they arrive as Quit events.
func NewKeyboard() *Keyboard {
	ebiten.SetWindowClosingHandled(true)
	return &Keyboard{
		pressed:  make([]ebiten.Key, 0, 8),
		released: make([]ebiten.Key, 0, 8),
	}
}

func (k *Keyboard) Poll(dst []Event) []Event {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	k.released = inpututil.AppendJustReleasedKeys(k.released[:0])
	return translate(dst, ebiten.IsWindowBeingClosed(), k.pressed, k.released)
}

// translate appends the events for one frame of key edges. Quit comes first
// so nothing after it is applied. inpututil only reports edges, so none of
// these are repeats.
func translate(dst []Event, closing bool, pressed, released []ebiten.Key) []Event {
	quit := closing
	for _, key := range pressed {
		if key == ebiten.KeyEscape {
			quit = true
		}
	}
	if quit {
		dst = append(dst, Quit())
	}

	for _, key := range pressed {
		if key == ebiten.KeyEscape {
			continue
		}
		dst = append(dst, Pressed(ebitenKeys[key]))
	}
	for _, key := range released {
		if key == ebiten.KeyEscape {
			continue
		}
		dst = append(dst, Released(ebitenKeys[key]))
	}
	return dst
}
