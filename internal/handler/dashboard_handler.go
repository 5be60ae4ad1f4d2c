package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vedant491/college-fees-api/internal/service"
	"github.com/Vedant491/college-fees-api/pkg/response"
)

// DashboardHandler exposes the admin dashboard snapshot.
type DashboardHandler struct {
	reports *service.ReportService
}

// NewDashboardHandler constructs DashboardHandler.
func NewDashboardHandler(reports *service.ReportService) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// Get godoc
// @Summary Dashboard counters, recent payments and per-course revenue
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	snapshot, cached, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, snapshot, nil, map[string]interface{}{"cached": cached})
}
