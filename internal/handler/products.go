package handler

import (
	"net/http"
	"strconv"

	"stockledger/internal/apierror"
	"stockledger/internal/dto"
	"stockledger/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

// paramID parses the :id path segment. Writes the 400 response itself
// when the segment is not a positive integer.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// Register godoc
// @Summary      Register a product
// @Description  Creates a product and logs the initial stock movement atomically.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body body dto.RegisterProductRequest true "Product"
// @Success      201  {object} dto.ProductResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/products [post]
func (h *ProductsHandler) Register(c *gin.Context) {
	var req dto.RegisterProductRequest
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

func (h *ProductsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Get(c *gin.Context) {
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

// AdjustStock godoc
// @Summary      Adjust product stock
// @Description  Applies an add/remove/set adjustment and appends one movement record.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id   path string                 true "Product id"
// @Param        body body dto.AdjustStockRequest true "Adjustment"
// @Success      200  {object} dto.ProductResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/products/{id}/stock [patch]
func (h *ProductsHandler) AdjustStock(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AdjustStock(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
