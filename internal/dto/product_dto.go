package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterProductRequest struct {
	// Code is the natural key. Optional in full mode, required in reduced mode.
	Code        *string         `json:"code"        validate:"omitempty,min=1,max=64"`
	Name        string          `json:"name"        validate:"required,min=1,max=120"`
	Category    *string         `json:"category"`
	Quantity    int             `json:"quantity"    validate:"min=0"`
	Price       decimal.Decimal `json:"price"       validate:"min=0"`
	Description *string         `json:"description"`
	Supplier    *string         `json:"supplier"`
	MinStock    *int            `json:"min_stock"   validate:"omitempty,min=0"` // default 5
}

// AdjustStockRequest mutates a product's on-hand quantity.
// Kind add/remove treat Quantity as a delta; set treats it as the new value.
type AdjustStockRequest struct {
	Kind     string `json:"kind"     validate:"required,oneof=add remove set"`
	Quantity int    `json:"quantity" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID          uint            `json:"id"`
	Code        *string         `json:"code,omitempty"`
	Name        string          `json:"name"`
	Category    *string         `json:"category"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Supplier    *string         `json:"supplier"`
	MinStock    int             `json:"min_stock"`
	// LowStock flags quantity <= min_stock for display highlighting.
	LowStock bool `json:"low_stock"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
}
