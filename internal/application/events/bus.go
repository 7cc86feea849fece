package events

import (
	"sync"
	"time"
)

// CheckInRecorded is published after a check-in is accepted by the backend.
type CheckInRecorded struct {
	AssinaturaID int64
	At           time.Time
}

// Bus fans CheckInRecorded events out to subscribers in-process.
// Publish never blocks: a subscriber that cannot keep up misses events,
// which is fine for refresh signals.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan CheckInRecorded
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan CheckInRecorded)}
}

// Subscribe registers a listener and returns its channel plus a cancel
// function that must be called when the listener goes away.
// POST: The returned channel has a small buffer and is closed by cancel
func (b *Bus) Subscribe() (<-chan CheckInRecorded, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan CheckInRecorded, 4)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the event to every current subscriber without blocking.
// POST: Subscribers with full buffers are skipped
func (b *Bus) Publish(event CheckInRecorded) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount reports the number of active subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
