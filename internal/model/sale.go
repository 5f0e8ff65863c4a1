package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is created atomically with its items and never mutated or
// deleted afterwards. Total is the post-discount amount; an oversized
// discount can legitimately drive it negative.
type Sale struct {
	ID        uint            `gorm:"primaryKey"`
	Total     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time

	Items []SaleItem `gorm:"foreignKey:SaleID"`
}

// SaleItem captures the unit price at the time of sale, so later price
// changes never rewrite historical totals.
type SaleItem struct {
	ID           uint            `gorm:"primaryKey"`
	SaleID       uint            `gorm:"not null;index"`
	ProductID    uint            `gorm:"not null;index"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ItemDiscount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (SaleItem) TableName() string { return "sale_items" }

// Subtotal is UnitPrice * Quantity - ItemDiscount.
func (i *SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.ItemDiscount)
}
