package events

import (
	"sync"
)

// Queue is an unbounded FIFO of events. A Tick pushed while another Tick is
// still the newest pending event is dropped, so a slow consumer never falls
// behind on timer events. Push never blocks.
type Queue struct {
	mu     sync.Mutex
	items  []Event
	closed bool
	ready  chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

// Push appends ev. It reports false when the queue is already closed.
func (q *Queue) Push(ev Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	if ev.Kind == KindTick && len(q.items) > 0 && q.items[len(q.items)-1].Kind == KindTick {
		return true
	}

	q.items = append(q.items, ev)
	q.signal()

	return true
}

// Close marks the end of the stream. Pending events are still delivered.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.signal()
}

// Next blocks until an event is available. It returns false once the queue
// is closed and drained.
func (q *Queue) Next() (Event, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			ev := q.items[0]
			q.items[0] = Event{}
			q.items = q.items[1:]
			if len(q.items) > 0 || q.closed {
				q.signal()
			}
			q.mu.Unlock()
			return ev, true
		}
		if q.closed {
			q.signal()
			q.mu.Unlock()
			return Event{}, false
		}
		q.mu.Unlock()

		<-q.ready
	}
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// signal wakes one waiter without blocking; the caller holds mu.
func (q *Queue) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}
