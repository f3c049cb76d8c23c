package storage

import "sync"

// Subscription is a live query. Updates delivers the latest result of the query:
// first the current snapshot, then a new value after every write to the store.
// Values that are not consumed before the next one arrives are dropped.
type Subscription[T any] struct {
	updates chan T

	mu      sync.Mutex
	closed  bool
	release func()
}

func newSubscription[T any]() *Subscription[T] {
	return &Subscription[T]{updates: make(chan T, 1)}
}

// Updates returns the channel of query results. It is closed by Close.
func (s *Subscription[T]) Updates() <-chan T {
	return s.updates
}

// Close stops the subscription. It is safe to call more than once.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.updates)
	release := s.release
	s.mu.Unlock()

	if release != nil {
		release()
	}
}

func (s *Subscription[T]) push(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	// drop the stale value
	select {
	case <-s.updates:
	default:
	}

	select {
	case s.updates <- v:
	default:
	}
}
