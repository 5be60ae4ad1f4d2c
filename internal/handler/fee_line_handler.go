package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vedant491/college-fees-api/internal/service"
	appErrors "github.com/Vedant491/college-fees-api/pkg/errors"
	"github.com/Vedant491/college-fees-api/pkg/response"
)

// FeeLineHandler exposes fee schedule endpoints.
type FeeLineHandler struct {
	feeLines *service.FeeLineService
}

// NewFeeLineHandler constructs FeeLineHandler.
func NewFeeLineHandler(feeLines *service.FeeLineService) *FeeLineHandler {
	return &FeeLineHandler{feeLines: feeLines}
}

// Create godoc
// @Summary Add a semester fee line to a course
// @Tags Fees
// @Accept json
// @Produce json
// @Param payload body service.CreateFeeLineRequest true "Fee line payload"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /fee-lines [post]
func (h *FeeLineHandler) Create(c *gin.Context) {
	var req service.CreateFeeLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	feeLine, err := h.feeLines.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, feeLine)
}

// List godoc
// @Summary List fee lines, optionally filtered by course
// @Tags Fees
// @Produce json
// @Param course_id query string false "Filter by course"
// @Success 200 {object} response.Envelope
// @Router /fee-lines [get]
func (h *FeeLineHandler) List(c *gin.Context) {
	feeLines, err := h.feeLines.List(c.Request.Context(), c.Query("course_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, feeLines, nil)
}

// ListForStudent godoc
// @Summary List the fee lines applicable to a student's course
// @Tags Fees
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/fee-lines [get]
func (h *FeeLineHandler) ListForStudent(c *gin.Context) {
	feeLines, err := h.feeLines.ListForStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, feeLines, nil)
}
