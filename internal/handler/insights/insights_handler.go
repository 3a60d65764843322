package insights

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/metrics"
	"github.com/uxpulse/ux-pulse-backend/internal/model/response/wrapper"
	"github.com/uxpulse/ux-pulse-backend/internal/service/report"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
)

type InsightsHandler struct {
	telemetry telemetry.Service
	report    *report.ReportService
}

func NewInsightsHandler(telemetryService telemetry.Service, reportService *report.ReportService) *InsightsHandler {
	return &InsightsHandler{
		telemetry: telemetryService,
		report:    reportService,
	}
}

// Insights godoc
// @Summary      Generated insight report
// @Description  Summarize the current aggregate state, obtain report text from the configured model and return it segmented into {insight, suggestion} pairs.
// @Tags         insights
// @Produce      json
// @Success      200  {object}  wrapper.ResponseWrapper{data=entity.InsightReport}
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /insights [get]
func (h *InsightsHandler) Insights(c *gin.Context) {
	ctx := c.Request.Context()
	started := time.Now()

	var (
		result *entity.InsightReport
		err    error
	)
	if h.telemetry.Mode() == telemetry.ModeTally {
		var counts entity.TallyCounts
		counts, err = h.telemetry.Counts(ctx)
		if err == nil {
			result, err = h.report.FromTally(ctx, counts)
		}
	} else {
		var snapshot *entity.Snapshot
		snapshot, err = h.telemetry.Snapshot(ctx)
		if err == nil {
			result, err = h.report.FromSnapshot(ctx, snapshot)
		}
	}

	metrics.InsightGenerationDuration.Observe(time.Since(started).Seconds())

	if err != nil {
		metrics.InsightRequests.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
			Success: false,
		})
		return
	}

	metrics.InsightRequests.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, wrapper.ResponseWrapper{Data: result, Success: true})
}
