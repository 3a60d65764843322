package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/uxpulse/ux-pulse-backend/internal/entity"
	"github.com/uxpulse/ux-pulse-backend/internal/model/response/wrapper"
	"github.com/uxpulse/ux-pulse-backend/internal/service/telemetry"
	"github.com/uxpulse/ux-pulse-backend/pkg/utils"
)

type AdminHandler struct {
	service      telemetry.Service
	passwordHash string
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func NewAdminHandler(service telemetry.Service, passwordHash string) *AdminHandler {
	return &AdminHandler{
		service:      service,
		passwordHash: passwordHash,
	}
}

// Login godoc
// @Summary      Admin login
// @Description  Exchange the admin password for a session token cookie.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        credentials  body      loginRequest  true  "Admin credentials"
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      401  {object}  wrapper.ErrorWrapper
// @Router       /api/v1/admin/auth [post]
func (h *AdminHandler) Login(c *gin.Context) {
	if h.passwordHash == "" {
		c.JSON(http.StatusServiceUnavailable, wrapper.ErrorWrapper{
			Message: "Admin access is not configured",
			Success: false,
		})
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
			Message: "Invalid request body: " + err.Error(),
			Success: false,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, wrapper.ErrorWrapper{
			Message: "Invalid credentials",
			Success: false,
		})
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: "Failed to issue token",
			Success: false,
		})
		return
	}

	c.SetCookie("token", token, 72*3600, "/", "", false, true)
	c.JSON(http.StatusOK, wrapper.SuccessWrapper{
		Message: "Authenticated",
		Success: true,
	})
}

// ListEvents godoc
// @Summary      Raw event log
// @Description  Page through the stored raw events. Only available in replay mode; tally mode retains no raw events.
// @Tags         admin
// @Produce      json
// @Param        page      query     int  false  "Page number (starts from 1)"
// @Param        per_page  query     int  false  "Items per page (default: 20, max: 1000)"
// @Success      200  {object}  entity.PaginatedResponse{data=[]entity.Event}
// @Failure      400  {object}  wrapper.ErrorWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /api/v1/admin/events [get]
func (h *AdminHandler) ListEvents(c *gin.Context) {
	page := intQuery(c, "page", 1)
	perPage := intQuery(c, "per_page", 20)

	events, info, err := h.service.Events(c.Request.Context(), page, perPage)
	if err != nil {
		if errors.Is(err, telemetry.ErrNotSupported) {
			c.JSON(http.StatusBadRequest, wrapper.ErrorWrapper{
				Message: "Raw events are not retained in tally mode",
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

	c.JSON(http.StatusOK, entity.PaginatedResponse{
		Data:       events,
		Success:    true,
		Pagination: *info,
	})
}

// ResetEvents godoc
// @Summary      Reset accumulated state
// @Description  Drop every stored event (replay mode) or every counter (tally mode).
// @Tags         admin
// @Produce      json
// @Success      200  {object}  wrapper.SuccessWrapper
// @Failure      500  {object}  wrapper.ErrorWrapper
// @Router       /api/v1/admin/events [delete]
func (h *AdminHandler) ResetEvents(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, wrapper.ErrorWrapper{
			Message: err.Error(),
			Success: false,
		})
		return
	}

	c.JSON(http.StatusOK, wrapper.SuccessWrapper{
		Message: "Telemetry state reset",
		Success: true,
	})
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value := c.Query(name)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
