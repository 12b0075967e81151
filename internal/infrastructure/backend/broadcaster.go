package backend

import (
	"sync"

	"github.com/you/padelsvc/domain"
)

// Broadcaster fans auth-state changes out to subscribers. Subscriptions are
// explicit objects: Subscribe returns the teardown func and nothing is
// registered as a package-level side effect.
type Broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]domain.AuthChangeCallback
}

// NewBroadcaster creates an empty broadcaster.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[int]domain.AuthChangeCallback)}
}

// Subscribe registers cb and returns its unsubscribe func. Unsubscribing
// twice is harmless.
func (b *Broadcaster) Subscribe(cb domain.AuthChangeCallback) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = cb
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Broadcast delivers the event to every subscriber synchronously.
// Delivery order is unspecified.
func (b *Broadcaster) Broadcast(event domain.AuthChangeEvent, session *domain.AuthSession) {
	b.mu.Lock()
	cbs := make([]domain.AuthChangeCallback, 0, len(b.subs))
	for _, cb := range b.subs {
		cbs = append(cbs, cb)
	}
	b.mu.Unlock()

	for _, cb := range cbs {
		cb(event, session)
	}
}
