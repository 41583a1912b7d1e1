package ecs

// EventKind identifies a simulation event raised during a tick.
type EventKind string

const (
	EventPaddleHit EventKind = "paddle_hit"
	EventWallHit   EventKind = "wall_hit"
	EventReset     EventKind = "reset"
)

// Event records one rule firing against an entity.
type Event struct {
	Kind   EventKind
	Entity Entity
}

// EventQueue is a simple FIFO queue cleared at the end of every tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Pending returns the events pushed since the last flush without clearing them.
func (q *EventQueue) Pending() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// flush keeps the backing array so steady-state ticks do not allocate.
func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
