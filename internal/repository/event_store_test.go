package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

func TestMemoryEventStoreOrder(t *testing.T) {
	store := NewMemoryEventStore()
	ctx := context.Background()

	ids := []string{"s1", "s2", "s3"}
	for _, id := range ids {
		if err := store.Append(ctx, entity.Event{SessionID: entity.FlexString(id)}); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	events, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != len(ids) {
		t.Fatalf("expected %d events, got %d", len(ids), len(events))
	}
	for i, id := range ids {
		if string(events[i].SessionID) != id {
			t.Fatalf("event %d out of order: got %s, want %s", i, events[i].SessionID, id)
		}
	}
}

func TestMemoryEventStoreListIsCopy(t *testing.T) {
	store := NewMemoryEventStore()
	ctx := context.Background()

	if err := store.Append(ctx, entity.Event{SessionID: "a"}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	events, _ := store.List(ctx)
	events[0].SessionID = "mutated"

	fresh, _ := store.List(ctx)
	if string(fresh[0].SessionID) != "a" {
		t.Fatal("mutating a listed slice must not affect the store")
	}
}

func TestMemoryEventStoreReset(t *testing.T) {
	store := NewMemoryEventStore()
	ctx := context.Background()

	store.Append(ctx, entity.Event{})
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	n, err := store.Len(ctx)
	if err != nil {
		t.Fatalf("len failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected empty store after reset, got %d", n)
	}
}

func TestMemoryEventStoreConcurrentAppend(t *testing.T) {
	store := NewMemoryEventStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Append(ctx, entity.Event{})
			store.List(ctx)
		}()
	}
	wg.Wait()

	n, _ := store.Len(ctx)
	if n != 50 {
		t.Fatalf("expected 50 events after concurrent appends, got %d", n)
	}
}
