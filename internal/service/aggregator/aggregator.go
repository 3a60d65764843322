package aggregator

import (
	"context"
	"fmt"
	"math"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/repository"
	"github.com/uxpulse/ux-pulse-backend/pkg/utils"
)

// recentLimit bounds the "recent" slices returned in a snapshot.
const recentLimit = 50

// AggregatorService recomputes the full metric snapshot from the raw event
// log on every query. It only ever reads the store.
type AggregatorService struct {
	store repository.EventStore
}

func NewAggregatorService(store repository.EventStore) *AggregatorService {
	return &AggregatorService{store: store}
}

func (s *AggregatorService) Snapshot(ctx context.Context) (*entity.Snapshot, error) {
	events, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read event store: %w", err)
	}

	snapshot := Compute(events)
	return &snapshot, nil
}

// Compute derives every metric from the full event sequence in one pass.
// It is total over the Event shape: a missing or malformed field contributes
// nothing to the affected metric and never fails the computation.
func Compute(events []entity.Event) entity.Snapshot {
	sessions := make(map[string]struct{})
	pages := make(map[string]entity.PageStats)

	var clicks, mouseMovements, scrolls, rageClicks []entity.Point
	var totalTimeOnPage float64
	var viewportWidthSum, viewportHeightSum float64
	var viewportCount int
	var totalConversionTime float64
	var conversionCount int
	var completedSessions, activeSessions, abandonedSessions int

	for _, ev := range events {
		if sid := string(ev.SessionID); sid != "" {
			sessions[sid] = struct{}{}
		}

		clicks = append(clicks, ev.Clicks...)
		mouseMovements = append(mouseMovements, ev.MouseMovements...)
		scrolls = append(scrolls, ev.Scrolls...)
		rageClicks = append(rageClicks, ev.RageClicks...)

		if page := ev.Page(); page != "" {
			stats := pages[page]
			stats.Clicks += len(ev.Clicks)
			stats.Sessions++
			pages[page] = stats
		}

		if t, ok := ev.TimeOnPage.Value(); ok {
			totalTimeOnPage += t
		}

		if ev.Viewport != nil {
			w, wok := ev.Viewport.Width.Value()
			h, hok := ev.Viewport.Height.Value()
			if wok && hok && w != 0 && h != 0 {
				viewportWidthSum += w
				viewportHeightSum += h
				viewportCount++
			}
		}

		if t, ok := ev.ConversionTime.Value(); ok {
			totalConversionTime += t
			conversionCount++
		}

		switch string(ev.SessionStatus) {
		case entity.SessionCompleted:
			completedSessions++
		case entity.SessionActive:
			activeSessions++
		case entity.SessionAbandoned:
			abandonedSessions++
		}
	}

	snapshot := entity.Snapshot{
		TotalSessions:       len(sessions),
		TotalClicks:         len(clicks),
		TotalMouseMovements: len(mouseMovements),
		TotalScrolls:        len(scrolls),
		TotalRageClicks:     len(rageClicks),
		TotalTimeOnPage:     totalTimeOnPage,
		Clicks:              recent(clicks),
		MouseMovements:      recent(mouseMovements),
		Scrolls:             recent(scrolls),
		RageClicks:          recent(rageClicks),
		Pages:               pages,
		ActiveSessions:      activeSessions,
		CompletedSessions:   completedSessions,
		AbandonedSessions:   abandonedSessions,
	}

	if viewportCount > 0 {
		snapshot.AverageViewport = entity.ViewportAverage{
			Width:  int64(math.Round(viewportWidthSum / float64(viewportCount))),
			Height: int64(math.Round(viewportHeightSum / float64(viewportCount))),
		}
	}

	// Rates and averages are computed against the event count, not the
	// session count.
	if n := len(events); n > 0 {
		snapshot.AverageTimeOnPage = int64(math.Round(totalTimeOnPage / float64(n)))
		snapshot.AverageClicks = float64(len(clicks)) / float64(n)
		snapshot.DropOffRate = utils.RoundToOneDecimal(float64(abandonedSessions) / float64(n) * 100)
		snapshot.ConversionRate = utils.RoundToOneDecimal(float64(completedSessions) / float64(n) * 100)
	}

	// nil means "no conversions observed", which is not the same thing as
	// a zero time to convert.
	if conversionCount > 0 {
		avg := int64(math.Round(totalConversionTime / float64(conversionCount)))
		snapshot.AverageTimeToConvert = &avg
	}

	return snapshot
}

// recent returns the last 50 points in original order. The result is a
// fresh slice so the snapshot never aliases accumulator storage.
func recent(points []entity.Point) []entity.Point {
	start := 0
	if len(points) > recentLimit {
		start = len(points) - recentLimit
	}
	out := make([]entity.Point, len(points)-start)
	copy(out, points[start:])
	return out
}
