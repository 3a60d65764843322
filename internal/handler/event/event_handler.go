package event

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/metrics"
	"github.com/uxpulse/ux-pulse-backend/internal/model/response/wrapper"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
)

type EventHandler struct {
	service telemetry.Service
}

func NewEventHandler(service telemetry.Service) *EventHandler {
	return &EventHandler{service: service}
}

// Ingest godoc
// @Summary      Submit a telemetry event
// @Description  Store one raw user-interaction event. All fields are optional; missing fields simply contribute nothing to the aggregates. In tally mode eventType is mandatory.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        event  body      entity.Event  true  "Telemetry event"
// @Success      200    {object}  wrapper.ResponseWrapper{data=entity.EventAck}
// @Failure      400    {object}  wrapper.ErrorWrapper
// @Failure      500    {object}  wrapper.ErrorWrapper
// @Router       /event [post]
func (h *EventHandler) Ingest(c *gin.Context) {
	var ev entity.Event
	if err := c.ShouldBindJSON(&ev); err != nil {
		metrics.EventsRejected.Inc()
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
			Success: false,
		})
		return
	}

	if err := h.service.Ingest(c.Request.Context(), &ev); err != nil {
		if errors.Is(err, telemetry.ErrEventTypeRequired) {
			metrics.EventsRejected.Inc()
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: err.Error(),
				Success: false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
			Success: false,
		})
		return
	}

	metrics.EventsIngested.WithLabelValues(string(h.service.Mode())).Inc()

	if h.service.Mode() == telemetry.ModeTally {
		counts, err := h.service.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
				Message: err.Error(),
				Success: false,
			})
			return
		}
		c.JSON(http.StatusOK, wrapper.ResponseWrapper{
			Data:    entity.TallyAck{Message: "Event data received", Counts: counts},
			Success: true,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{
		Data:    entity.EventAck{Message: "Event data received", Received: ev},
		Success: true,
	})
}
