package handler

import (
	"net/http"

	"stockledger/internal/dto"
	"stockledger/internal/service"

	"github.com/gin-gonic/gin"
)

type SalesHandler struct{ svc service.SaleService }

func NewSalesHandler(svc service.SaleService) *SalesHandler { return &SalesHandler{svc: svc} }

// Register godoc
// @Summary      Settle a cart as a sale
// @Description  Validates every line, then atomically creates the sale, its items, the stock decrements, and one sale movement per line. Returns the plain-text receipt.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterSaleRequest true "Cart"
// @Success      201  {object} dto.SaleResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/sales [post]
func (h *SalesHandler) Register(c *gin.Context) {
	var req dto.RegisterSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SalesHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Report godoc
// @Summary      Sales report
// @Description  Returns every sale with its nested line items, newest first.
// @Tags         sales
// @Produce      json
// @Success      200 {object} dto.SalesReportResponse
// @Router       /v1/sales [get]
func (h *SalesHandler) Report(c *gin.Context) {
	resp, err := h.svc.Report(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
