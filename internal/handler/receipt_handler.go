package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vedant491/college-fees-api/internal/service"
	"github.com/Vedant491/college-fees-api/pkg/response"
)

// ReceiptHandler exposes receipt endpoints.
type ReceiptHandler struct {
	receipts *service.ReceiptService
}

// NewReceiptHandler constructs ReceiptHandler.
func NewReceiptHandler(receipts *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// Issue godoc
// @Summary Issue a receipt for a completed payment
// @Tags Receipts
// @Produce json
// @Param id path string true "Payment ID"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /payments/{id}/receipt [post]
func (h *ReceiptHandler) Issue(c *gin.Context) {
	receipt, err := h.receipts.Issue(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, receipt)
}

// Get godoc
// @Summary Resolve a printable receipt by its number
// @Tags Receipts
// @Produce json
// @Param number path string true "Receipt number"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /receipts/{number} [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	doc, err := h.receipts.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc, nil)
}

// GetPDF godoc
// @Summary Download a printable receipt as PDF
// @Tags Receipts
// @Produce application/pdf
// @Param number path string true "Receipt number"
// @Success 200 {string} string "PDF content"
// @Failure 404 {object} response.Envelope
// @Router /receipts/{number}/pdf [get]
func (h *ReceiptHandler) GetPDF(c *gin.Context) {
	number := c.Param("number")
	data, err := h.receipts.RenderPDF(c.Request.Context(), number)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.pdf\"", number))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", data)
}
