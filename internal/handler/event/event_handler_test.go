package event

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/uxpulse/ux-pulse-backend/internal/repository"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
)

func newRouter(service telemetry.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/event", NewEventHandler(service).Ingest)
	return r
}

func postEvent(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/event", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIngestReplayEchoesPayload(t *testing.T) {
	store := repository.NewMemoryEventStore()
	r := newRouter(telemetry.NewReplayService(store))

	w := postEvent(r, `{"sessionId": "abc", "clicks": [{"x": 1, "y": 2, "timestamp": 3}]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Message  string `json:"message"`
			Received struct {
				SessionID string `json:"sessionId"`
			} `json:"received"`
		} `json:"data"`
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Message != "Event data received" {
		t.Fatalf("unexpected ack message: %q", resp.Data.Message)
	}
	if resp.Data.Received.SessionID != "abc" {
		t.Fatalf("payload not echoed, got %q", resp.Data.Received.SessionID)
	}

	n, _ := store.Len(context.Background())
	if n != 1 {
		t.Fatalf("expected 1 stored event, got %d", n)
	}
}

func TestIngestToleratesMalformedFields(t *testing.T) {
	store := repository.NewMemoryEventStore()
	r := newRouter(telemetry.NewReplayService(store))

	w := postEvent(r, `{"sessionId": 42, "clicks": "nope", "viewport": "huge"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("malformed optional fields must not reject the event, got %d: %s", w.Code, w.Body.String())
	}
}

func TestIngestRejectsNonObjectBody(t *testing.T) {
	r := newRouter(telemetry.NewReplayService(repository.NewMemoryEventStore()))

	w := postEvent(r, `[1, 2, 3]`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-object body, got %d", w.Code)
	}
}

func TestIngestTallyRequiresEventType(t *testing.T) {
	r := newRouter(telemetry.NewTallyService(repository.NewMemoryTallyStore()))

	w := postEvent(r, `{"sessionId": "abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without eventType in tally mode, got %d", w.Code)
	}

	w = postEvent(r, `{"eventType": "click"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with eventType, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Counts struct {
				TotalEvents int64            `json:"totalEvents"`
				EventTypes  map[string]int64 `json:"eventTypes"`
			} `json:"counts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Counts.TotalEvents != 1 || resp.Data.Counts.EventTypes["click"] != 1 {
		t.Fatalf("ack must carry the updated counters, got %+v", resp.Data.Counts)
	}
}
