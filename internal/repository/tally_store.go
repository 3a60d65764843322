package repository

import (
	"context"
	"sync"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

// TallyStore is the incremental-tally aggregation state: each recorded
// event updates a small set of named counters in place, so Record is O(1)
// amortized and Counts just returns the current counter map. Raw events are
// not retained here, which is the trade-off against the full-replay mode:
// cheap queries, no historical views.
type TallyStore interface {
	Record(ctx context.Context, event entity.Event) error
	Counts(ctx context.Context) (entity.TallyCounts, error)
	Reset(ctx context.Context) error
}

type memoryTallyStore struct {
	mu          sync.RWMutex
	totalEvents int64
	sessions    map[string]struct{}
	eventTypes  map[string]int64
	pageEvents  map[string]int64
	pageClicks  map[string]int64
}

func NewMemoryTallyStore() TallyStore {
	return &memoryTallyStore{
		sessions:   make(map[string]struct{}),
		eventTypes: make(map[string]int64),
		pageEvents: make(map[string]int64),
		pageClicks: make(map[string]int64),
	}
}

func (s *memoryTallyStore) Record(_ context.Context, event entity.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalEvents++
	if sid := string(event.SessionID); sid != "" {
		s.sessions[sid] = struct{}{}
	}
	if et := string(event.EventType); et != "" {
		s.eventTypes[et]++
	}
	if page := event.Page(); page != "" {
		s.pageEvents[page]++
		s.pageClicks[page] += int64(len(event.Clicks))
	}
	return nil
}

func (s *memoryTallyStore) Counts(_ context.Context) (entity.TallyCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := entity.TallyCounts{
		TotalEvents: s.totalEvents,
		Sessions:    int64(len(s.sessions)),
		EventTypes:  make(map[string]int64, len(s.eventTypes)),
		PageEvents:  make(map[string]int64, len(s.pageEvents)),
		PageClicks:  make(map[string]int64, len(s.pageClicks)),
	}
	for k, v := range s.eventTypes {
		counts.EventTypes[k] = v
	}
	for k, v := range s.pageEvents {
		counts.PageEvents[k] = v
	}
	for k, v := range s.pageClicks {
		counts.PageClicks[k] = v
	}
	return counts, nil
}

func (s *memoryTallyStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalEvents = 0
	s.sessions = make(map[string]struct{})
	s.eventTypes = make(map[string]int64)
	s.pageEvents = make(map[string]int64)
	s.pageClicks = make(map[string]int64)
	return nil
}
