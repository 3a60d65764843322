package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/repository"
)

func TestReplayIngestAssignsIdentity(t *testing.T) {
	store := repository.NewMemoryEventStore()
	svc := NewReplayService(store)
	ctx := context.Background()

	ev := entity.Event{SessionID: "a"}
	if err := svc.Ingest(ctx, &ev); err != nil {
		t.Fatalf("ingest failed: %v", err)
	}

	if ev.ID == uuid.Nil {
		t.Fatal("ingest must assign an event id")
	}
	if ev.ReceivedAt.IsZero() {
		t.Fatal("ingest must stamp the arrival time")
	}

	stored, _ := store.List(ctx)
	if len(stored) != 1 || stored[0].ID != ev.ID {
		t.Fatalf("stored event does not match the ack, got %+v", stored)
	}
}

func TestReplayEventsPagination(t *testing.T) {
	store := repository.NewMemoryEventStore()
	svc := NewReplayService(store)
	ctx := context.Background()

	for i := 0; i < 45; i++ {
		if err := svc.Ingest(ctx, &entity.Event{}); err != nil {
			t.Fatalf("ingest failed: %v", err)
		}
	}

	cases := []struct {
		name       string
		page       int
		perPage    int
		wantLen    int
		wantPage   int
		wantPer    int
		totalPages int
	}{
		{"defaults", 0, 0, 20, 1, 20, 3},
		{"second page", 2, 20, 20, 2, 20, 3},
		{"last partial page", 3, 20, 5, 3, 20, 3},
		{"past the end", 9, 20, 0, 9, 20, 3},
		{"per page clamped", 1, 5000, 45, 1, 1000, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			events, info, err := svc.Events(ctx, tc.page, tc.perPage)
			if err != nil {
				t.Fatalf("events failed: %v", err)
			}
			if len(events) != tc.wantLen {
				t.Fatalf("expected %d events, got %d", tc.wantLen, len(events))
			}
			if info.Page != tc.wantPage || info.PerPage != tc.wantPer {
				t.Fatalf("unexpected pagination info: %+v", info)
			}
			if info.Total != 45 || info.TotalPages != tc.totalPages {
				t.Fatalf("unexpected totals: %+v", info)
			}
		})
	}
}

func TestReplayCountsNotSupported(t *testing.T) {
	svc := NewReplayService(repository.NewMemoryEventStore())

	if _, err := svc.Counts(context.Background()); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported, got %v", err)
	}
}

func TestTallyIngestRequiresEventType(t *testing.T) {
	svc := NewTallyService(repository.NewMemoryTallyStore())
	ctx := context.Background()

	err := svc.Ingest(ctx, &entity.Event{SessionID: "a"})
	if !errors.Is(err, ErrEventTypeRequired) {
		t.Fatalf("expected ErrEventTypeRequired, got %v", err)
	}

	if err := svc.Ingest(ctx, &entity.Event{EventType: "click"}); err != nil {
		t.Fatalf("ingest with eventType failed: %v", err)
	}

	counts, err := svc.Counts(ctx)
	if err != nil {
		t.Fatalf("counts failed: %v", err)
	}
	if counts.TotalEvents != 1 {
		t.Fatalf("rejected events must not be counted, got %d", counts.TotalEvents)
	}
}

func TestTallyRawQueriesNotSupported(t *testing.T) {
	svc := NewTallyService(repository.NewMemoryTallyStore())
	ctx := context.Background()

	if _, err := svc.Snapshot(ctx); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported from Snapshot, got %v", err)
	}
	if _, _, err := svc.Events(ctx, 1, 20); !errors.Is(err, ErrNotSupported) {
		t.Fatalf("expected ErrNotSupported from Events, got %v", err)
	}
}

func TestReset(t *testing.T) {
	store := repository.NewMemoryEventStore()
	svc := NewReplayService(store)
	ctx := context.Background()

	svc.Ingest(ctx, &entity.Event{})
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	n, _ := store.Len(ctx)
	if n != 0 {
		t.Fatalf("expected empty store after reset, got %d", n)
	}
}
