package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/repository"
	"github.com/uxpulse/ux-pulse-backend/internal/service/aggregator"
)

// Mode selects how ingested events are aggregated. Replay retains the full
// raw log and recomputes every metric at query time; tally folds each event
// into counters at ingest time and retains nothing else. The trade-off is
// spelled out on the stores: replay pays per query, tally pays per event
// and loses historical views.
type Mode string

const (
	ModeReplay Mode = "replay"
	ModeTally  Mode = "tally"
)

var (
	// ErrEventTypeRequired is returned by tally-mode ingestion when the
	// event carries no eventType: without it there is nothing to count.
	ErrEventTypeRequired = errors.New("eventType is required")

	// ErrNotSupported marks operations the active mode cannot answer,
	// such as raw-log queries in tally mode.
	ErrNotSupported = errors.New("operation not supported in this aggregation mode")
)

// Service is the mode-agnostic facade the handlers talk to.
type Service interface {
	Mode() Mode
	Ingest(ctx context.Context, event *entity.Event) error
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
	Counts(ctx context.Context) (entity.TallyCounts, error)
	Events(ctx context.Context, page, perPage int) ([]entity.Event, *entity.PaginationInfo, error)
	Reset(ctx context.Context) error
}

type replayService struct {
	store repository.EventStore
	agg   *aggregator.AggregatorService
}

// NewReplayService builds the full-replay variant on top of an event store.
func NewReplayService(store repository.EventStore) Service {
	return &replayService{
		store: store,
		agg:   aggregator.NewAggregatorService(store),
	}
}

func (s *replayService) Mode() Mode { return ModeReplay }

func (s *replayService) Ingest(ctx context.Context, event *entity.Event) error {
	event.ID = uuid.New()
	event.ReceivedAt = time.Now()

	if err := s.store.Append(ctx, *event); err != nil {
		return fmt.Errorf("failed to store event: %w", err)
	}
	return nil
}

func (s *replayService) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	return s.agg.Snapshot(ctx)
}

func (s *replayService) Counts(ctx context.Context) (entity.TallyCounts, error) {
	return entity.TallyCounts{}, ErrNotSupported
}

func (s *replayService) Events(ctx context.Context, page, perPage int) ([]entity.Event, *entity.PaginationInfo, error) {
	if page < 1 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 20
	}
	if perPage > 1000 {
		perPage = 1000
	}

	events, err := s.store.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list events: %w", err)
	}

	total := len(events)
	totalPages := (total + perPage - 1) / perPage
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	info := &entity.PaginationInfo{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}
	return events[start:end], info, nil
}

func (s *replayService) Reset(ctx context.Context) error {
	return s.store.Reset(ctx)
}

type tallyService struct {
	tally repository.TallyStore
}

// NewTallyService builds the incremental-tally variant.
func NewTallyService(tally repository.TallyStore) Service {
	return &tallyService{tally: tally}
}

func (s *tallyService) Mode() Mode { return ModeTally }

func (s *tallyService) Ingest(ctx context.Context, event *entity.Event) error {
	if event.EventType == "" {
		return ErrEventTypeRequired
	}

	event.ID = uuid.New()
	event.ReceivedAt = time.Now()

	if err := s.tally.Record(ctx, *event); err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

func (s *tallyService) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	return nil, ErrNotSupported
}

func (s *tallyService) Counts(ctx context.Context) (entity.TallyCounts, error) {
	return s.tally.Counts(ctx)
}

func (s *tallyService) Events(ctx context.Context, page, perPage int) ([]entity.Event, *entity.PaginationInfo, error) {
	return nil, nil, ErrNotSupported
}

func (s *tallyService) Reset(ctx context.Context) error {
	return s.tally.Reset(ctx)
}
