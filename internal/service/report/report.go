package report

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/service/segmenter"
)

// NoInsightsMessage is returned when the provider produced no text at all.
const NoInsightsMessage = "No insights generated. There may not be enough event data yet."

// Generator produces free-form report text for a prompt. The OpenRouter
// client is the production implementation; tests substitute their own.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReportService orchestrates the insight flow: summarize current aggregate
// state into a prompt, obtain text from the generator, and segment it. All
// fallible work lives here; the aggregator and segmenter stay pure.
type ReportService struct {
	generator Generator
}

func NewReportService(generator Generator) *ReportService {
	return &ReportService{generator: generator}
}

// FromSnapshot builds the insight report for a full-replay snapshot.
func (s *ReportService) FromSnapshot(ctx context.Context, snapshot *entity.Snapshot) (*entity.InsightReport, error) {
	return s.generate(ctx, snapshotSummary(snapshot))
}

// FromTally builds the insight report for an incremental tally.
func (s *ReportService) FromTally(ctx context.Context, counts entity.TallyCounts) (*entity.InsightReport, error) {
	return s.generate(ctx, tallySummary(counts))
}

func (s *ReportService) generate(ctx context.Context, summary string) (*entity.InsightReport, error) {
	prompt := fmt.Sprintf(`You are an analytics assistant. Given these event stats: %s
Generate 1-2 actionable insights or UX improvement suggestions for the dashboard.
Format as a short paragraph.`, summary)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate insights: %w", err)
	}

	text = strings.TrimSpace(text)
	report := &entity.InsightReport{
		Segments: segmenter.Segment(text),
		RawText:  text,
	}
	if text == "" {
		report.Message = NoInsightsMessage
	}
	return report, nil
}

func snapshotSummary(snapshot *entity.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "sessions: %d, clicks: %d, mouse movements: %d, scrolls: %d, rage clicks: %d",
		snapshot.TotalSessions,
		snapshot.TotalClicks,
		snapshot.TotalMouseMovements,
		snapshot.TotalScrolls,
		snapshot.TotalRageClicks)
	fmt.Fprintf(&b, ", conversion rate: %.1f%%, drop-off rate: %.1f%%",
		snapshot.ConversionRate, snapshot.DropOffRate)
	if pages := topPages(snapshot.Pages, 5); len(pages) > 0 {
		fmt.Fprintf(&b, ", busiest pages: %s", strings.Join(pages, ", "))
	}
	return b.String()
}

func tallySummary(counts entity.TallyCounts) string {
	var b strings.Builder
	fmt.Fprintf(&b, "events: %d, sessions: %d", counts.TotalEvents, counts.Sessions)
	if len(counts.EventTypes) > 0 {
		types := make([]string, 0, len(counts.EventTypes))
		for name, n := range counts.EventTypes {
			types = append(types, fmt.Sprintf("%s=%d", name, n))
		}
		sort.Strings(types)
		fmt.Fprintf(&b, ", event types: %s", strings.Join(types, ", "))
	}
	return b.String()
}

// topPages returns up to limit page names ordered by click volume, busiest
// first, with name order breaking ties deterministically.
func topPages(pages map[string]entity.PageStats, limit int) []string {
	names := make([]string, 0, len(pages))
	for name := range pages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if pages[names[i]].Clicks != pages[names[j]].Clicks {
			return pages[names[i]].Clicks > pages[names[j]].Clicks
		}
		return names[i] < names[j]
	})
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}
