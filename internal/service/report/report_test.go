package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestFromSnapshotSegmentsText(t *testing.T) {
	gen := &fakeGenerator{
		text: "1. Users drop off on checkout.\n**UX Suggestion:** Add a progress indicator.",
	}
	svc := NewReportService(gen)

	snapshot := &entity.Snapshot{TotalSessions: 4, TotalClicks: 12, ConversionRate: 25.0}
	result, err := svc.FromSnapshot(context.Background(), snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(result.Segments))
	}
	if result.Segments[0].Suggestion != "Add a progress indicator." {
		t.Fatalf("unexpected suggestion: %q", result.Segments[0].Suggestion)
	}
	if result.Message != "" {
		t.Fatalf("no sentinel message expected, got %q", result.Message)
	}

	if !strings.Contains(gen.prompt, "sessions: 4") || !strings.Contains(gen.prompt, "clicks: 12") {
		t.Fatalf("prompt missing stats summary: %q", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "analytics assistant") {
		t.Fatalf("prompt missing instruction preamble: %q", gen.prompt)
	}
}

func TestFromSnapshotEmptyText(t *testing.T) {
	svc := NewReportService(&fakeGenerator{text: "   \n "})

	result, err := svc.FromSnapshot(context.Background(), &entity.Snapshot{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(result.Segments))
	}
	if result.Message != NoInsightsMessage {
		t.Fatalf("expected sentinel message, got %q", result.Message)
	}
}

func TestFromSnapshotGeneratorError(t *testing.T) {
	wantErr := errors.New("rate limited")
	svc := NewReportService(&fakeGenerator{err: wantErr})

	_, err := svc.FromSnapshot(context.Background(), &entity.Snapshot{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped generator error, got %v", err)
	}
}

func TestFromTallyPrompt(t *testing.T) {
	gen := &fakeGenerator{text: "All good."}
	svc := NewReportService(gen)

	counts := entity.TallyCounts{
		TotalEvents: 10,
		Sessions:    3,
		EventTypes:  map[string]int64{"click": 7, "scroll": 3},
	}
	if _, err := svc.FromTally(context.Background(), counts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gen.prompt, "events: 10") || !strings.Contains(gen.prompt, "sessions: 3") {
		t.Fatalf("prompt missing tally summary: %q", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "click=7") {
		t.Fatalf("prompt missing event type breakdown: %q", gen.prompt)
	}
}

func TestSnapshotSummaryTopPages(t *testing.T) {
	snapshot := &entity.Snapshot{
		Pages: map[string]entity.PageStats{
			"/home":     {Clicks: 10, Sessions: 5},
			"/checkout": {Clicks: 30, Sessions: 2},
			"/docs":     {Clicks: 20, Sessions: 1},
		},
	}

	summary := snapshotSummary(snapshot)

	i := strings.Index(summary, "/checkout")
	j := strings.Index(summary, "/docs")
	k := strings.Index(summary, "/home")
	if i < 0 || j < 0 || k < 0 || !(i < j && j < k) {
		t.Fatalf("pages not ordered by click volume in summary: %q", summary)
	}
}
