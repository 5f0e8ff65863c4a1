package handler

import (
	"net/http"

	"stockledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Stock returns the stock report (products by name, with low-stock flags).
func (h *ReportsHandler) Stock(c *gin.Context) {
	resp, err := h.svc.StockReport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Movements returns the full movement history, newest first.
func (h *ReportsHandler) Movements(c *gin.Context) {
	resp, err := h.svc.MovementHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
