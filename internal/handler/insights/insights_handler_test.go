package insights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/repository"
	"github.com/uxpulse/ux-pulse-backend/internal/service/report"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
)

type fakeGenerator struct {
	text string
	err  error
}

func (f *fakeGenerator) Generate(context.Context, string) (string, error) {
	return f.text, f.err
}

func getInsights(service telemetry.Service, gen report.Generator) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/insights", NewInsightsHandler(service, report.NewReportService(gen)).Insights)

	req := httptest.NewRequest(http.MethodGet, "/insights", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInsightsSegmentedReport(t *testing.T) {
	service := telemetry.NewReplayService(repository.NewMemoryEventStore())
	gen := &fakeGenerator{
		text: "Users drop off on checkout.\nSuggestion: add a progress indicator.",
	}

	w := getInsights(service, gen)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data entity.InsightReport `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(resp.Data.Segments))
	}
	if resp.Data.Segments[0].Suggestion != "add a progress indicator." {
		t.Fatalf("unexpected suggestion: %q", resp.Data.Segments[0].Suggestion)
	}
	if resp.Data.RawText == "" {
		t.Fatal("response must carry the raw generated text")
	}
}

func TestInsightsEmptyText(t *testing.T) {
	service := telemetry.NewReplayService(repository.NewMemoryEventStore())

	w := getInsights(service, &fakeGenerator{text: ""})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Data entity.InsightReport `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Message == "" {
		t.Fatal("expected the no-insights message for empty generated text")
	}
}

func TestInsightsProviderFailure(t *testing.T) {
	service := telemetry.NewReplayService(repository.NewMemoryEventStore())

	w := getInsights(service, &fakeGenerator{err: errors.New("rate limited")})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on provider failure, got %d", w.Code)
	}
}
