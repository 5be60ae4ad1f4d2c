package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vedant491/college-fees-api/internal/models"
	"github.com/Vedant491/college-fees-api/internal/service"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
	"github.com/Vedant491/college-fees-api/pkg/response"
)

// PaymentHandler exposes payment endpoints.
type PaymentHandler struct {
	payments *service.PaymentService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Record godoc
// @Summary Record a fee payment
// @Tags Payments
// @Accept json
// @Produce json
// @Param payload body service.RecordPaymentRequest true "Payment payload"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	var req service.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.payments.Record(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// List godoc
// @Summary List payments with student and course context
// @Tags Payments
// @Produce json
// @Param status query string false "Filter by status"
// @Param mode query string false "Filter by mode"
// @Success 200 {object} response.Envelope
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	filter := models.PaymentFilter{
		Status: models.PaymentStatus(c.Query("status")),
		Mode:   models.PaymentMode(c.Query("mode")),
	}
	payments, err := h.payments.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, payments, nil)
}

// Stats godoc
// @Summary Payment statistics with per-mode breakdown
// @Tags Payments
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /payments/stats [get]
func (h *PaymentHandler) Stats(c *gin.Context) {
	stats, err := h.payments.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Export godoc
// @Summary Export payments as CSV
// @Tags Payments
// @Produce text/csv
// @Param status query string false "Filter by status"
// @Param mode query string false "Filter by mode"
// @Success 200 {string} string "CSV content"
// @Router /payments/export [get]
func (h *PaymentHandler) Export(c *gin.Context) {
	filter := models.PaymentFilter{
		Status: models.PaymentStatus(c.Query("status")),
		Mode:   models.PaymentMode(c.Query("mode")),
	}
	data, err := h.payments.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	filename := fmt.Sprintf("payments-%s.csv", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/csv", data)
}
