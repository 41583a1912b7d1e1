package input

import "strings"

// Key is a backend-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyW
	KeyS
)

var keyNames = map[Key]string{
	KeyUp:   "up",
	KeyDown: "down",
	KeyW:    "w",
	KeyS:    "s",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a config name such as "up" or "W" to a Key.
func ParseKey(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// EventType distinguishes key transitions from the quit signal.
type EventType int

const (
	EventKeyDown EventType = iota + 1
	EventKeyUp
	EventQuit
)

// Event is one discrete input occurrence.
type Event struct {
	Type   EventType
	Key    Key
	Repeat bool
}

// Pressed returns a non-repeat key-down event for k.
func Pressed(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// Released returns a non-repeat key-up event for k.
func Released(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// Quit returns the quit signal.
func Quit() Event { return Event{Type: EventQuit} }

// Backend delivers pending input. Poll appends to dst and never blocks.
type Backend interface {
	Poll(dst []Event) []Event
}

// BackendFunc adapts a function to Backend.
type BackendFunc func(dst []Event) []Event

func (f BackendFunc) Poll(dst []Event) []Event {
	return f(dst)
}

type merged []Backend

// Merge polls several backends in order into one stream.
func Merge(backends ...Backend) Backend {
	out := make(merged, 0, len(backends))
	for _, b := range backends {
		if b != nil {
			out = append(out, b)
		}
	}
	return out
}

func (m merged) Poll(dst []Event) []Event {
	for _, b := range m {
		dst = b.Poll(dst)
	}
	return dst
}
