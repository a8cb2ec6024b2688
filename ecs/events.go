package ecs

// EventType names what happened, e.g. "boss_hit".
type EventType string

// Event is one thing that happened during a frame. Data is a payload struct
// owned by whoever pushed the event.
type Event struct {
	Type EventType
	Data any
}

// EventQueue collects the events of a frame in the order they were pushed.
// Front ends drain it once per frame.
type EventQueue struct {
	pending []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.pending = append(q.pending, evt)
}

// Drain hands over the pending events and leaves the queue empty. It returns
// nil when nothing is pending.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	out := q.pending
	q.pending = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

// Filter returns the events of type t, keeping their order.
func Filter(evts []Event, t EventType) []Event {
	var out []Event
	for _, evt := range evts {
		if evt.Type == t {
			out = append(out, evt)
		}
	}
	return out
}
