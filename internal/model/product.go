package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the single catalog entity shared by both deployment
// variants. The full variant identifies products by the surrogate ID;
// the reduced variant additionally requires Code, a caller-supplied
// natural key enforced unique at the storage layer.
type Product struct {
	ID          uint    `gorm:"primaryKey"`
	Code        *string `gorm:"uniqueIndex"`
	Name        string  `gorm:"index;not null"`
	Category    *string
	Quantity    int             `gorm:"not null;default:0"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description *string
	Supplier    *string
	// MinStock is a display threshold only. It never blocks a write.
	MinStock  int `gorm:"not null;default:5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LowStock reports whether the product should be highlighted in stock views.
func (p *Product) LowStock() bool { return p.Quantity <= p.MinStock }
