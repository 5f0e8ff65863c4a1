package model

import "time"

// Movement kinds. One movement row is appended per quantity-changing
// operation, including the initial registration.
const (
	MovementAdd    = "add"
	MovementRemove = "remove"
	MovementSet    = "set"
	MovementSale   = "sale"
)

// Movement is an append-only audit record of a single stock change.
// Quantity is the delta for add/remove/sale and the new absolute value
// for set. Rows are never modified or deleted.
type Movement struct {
	ID          uint   `gorm:"primaryKey"`
	ProductID   uint   `gorm:"not null;index"`
	Kind        string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	StockBefore int    `gorm:"not null"`
	StockAfter  int    `gorm:"not null"`
	Note        string
	// SaleID links sale-kind movements back to the originating sale.
	SaleID    *uint `gorm:"index"`
	CreatedAt time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}
