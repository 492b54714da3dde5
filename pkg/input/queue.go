package input

import "sync"

const (
	// QueueBufferSize is the maximum number of buffered events.
	QueueBufferSize = 1024
)

// Queue is a bounded FIFO of input events. When full, the oldest event is
// dropped so the game tick never blocks on input.
type Queue struct {
	lock   sync.Mutex
	events []Event
	max    int
}

// NewQueue creates a queue with the default buffer size.
func NewQueue() *Queue {
	return NewQueueWithSize(QueueBufferSize)
}

// NewQueueWithSize creates a queue holding at most max events.
func NewQueueWithSize(max int) *Queue {
	if max < 1 {
		max = 1
	}
	return &Queue{max: max}
}

// Push appends an event, evicting the oldest if the queue is full.
func (q *Queue) Push(e Event) {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.events) >= q.max {
		q.events = q.events[1:]
	}
	q.events = append(q.events, e)
}

// Pop removes and returns the oldest event, or nil if the queue is empty.
func (q *Queue) Pop() Event {
	q.lock.Lock()
	defer q.lock.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	e := q.events[0]
	q.events = q.events[1:]
	return e
}

// Size returns the number of buffered events.
func (q *Queue) Size() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.events)
}

// Drain removes and returns all buffered events in order.
func (q *Queue) Drain() []Event {
	q.lock.Lock()
	defer q.lock.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Clear discards all buffered events.
func (q *Queue) Clear() {
	q.lock.Lock()
	defer q.lock.Unlock()
	q.events = nil
}
