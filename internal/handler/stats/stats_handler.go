package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/uxpulse/ux-pulse-backend/internal/metrics"
	"github.com/uxpulse/ux-pulse-backend/internal/model/response/wrapper"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
)

type StatsHandler struct {
	service telemetry.Service
}

func NewStatsHandler(service telemetry.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

// Counts godoc
// @Summary      Aggregate statistics
// @Description  Return the derived metric snapshot (replay mode) or the current counter map (tally mode). The result is recomputed from the stored events on every call.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.Snapshot}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /counts [get]
func (h *StatsHandler) Counts(c *gin.Context) {
	metrics.SnapshotQueries.Inc()

	if h.service.Mode() == telemetry.ModeTally {
		counts, err := h.service.Counts(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
				Message: err.Error(),
				Success: false,
			})
			return
		}
		c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: counts, Success: true})
		return
	}

	snapshot, err := h.service.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
			Success: false,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: snapshot, Success: true})
}
