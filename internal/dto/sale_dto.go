package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type SaleItemRequest struct {
	ProductID    uint            `json:"product_id"    validate:"required,min=1"`
	Quantity     int             `json:"quantity"      validate:"required,min=1"`
	ItemDiscount decimal.Decimal `json:"item_discount" validate:"min=0"`
}

type RegisterSaleRequest struct {
	Items         []SaleItemRequest `json:"items"          validate:"required,min=1,dive"`
	TotalDiscount decimal.Decimal   `json:"total_discount" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleItemResponse struct {
	ProductID    uint            `json:"product_id"`
	Product      string          `json:"product"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ItemDiscount decimal.Decimal `json:"item_discount"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type SaleResponse struct {
	ID         uint               `json:"id"`
	Items      []SaleItemResponse `json:"items"`
	GrossTotal decimal.Decimal    `json:"gross_total"`
	Discount   decimal.Decimal    `json:"discount"`
	Total      decimal.Decimal    `json:"total"`
	// Receipt is the plain-text artifact fed by the sale result; only
	// populated on registration, not on report reads.
	Receipt     string `json:"receipt,omitempty"`
	ReceiptPath string `json:"receipt_path,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type SalesReportResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
}
