package repository

import (
	"context"
	"sync"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

// EventStore is the append-only raw event log. Stored events are never
// mutated or removed; List returns them in insertion order. Reset drops
// everything and exists for tests and the admin surface.
type EventStore interface {
	Append(ctx context.Context, event entity.Event) error
	List(ctx context.Context) ([]entity.Event, error)
	Len(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

type memoryEventStore struct {
	mu     sync.RWMutex
	events []entity.Event
}

// NewMemoryEventStore creates the default in-memory event store. Appends
// are serialized by a write lock so concurrent submissions stay atomic and
// concurrent aggregation reads see a consistent log.
func NewMemoryEventStore() EventStore {
	return &memoryEventStore{}
}

func (s *memoryEventStore) Append(_ context.Context, event entity.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *memoryEventStore) List(_ context.Context) ([]entity.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *memoryEventStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}

func (s *memoryEventStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	return nil
}
