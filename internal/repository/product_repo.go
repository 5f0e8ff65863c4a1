package repository

import (
	"context"

	"stockledger/internal/model"

	"gorm.io/gorm"
)

// ProductRepository defines the data access contract for products.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs. Methods suffixed Tx run against a
// caller-supplied transaction so multi-statement operations stay atomic.
type ProductRepository interface {
	CreateTx(tx *gorm.DB, p *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	FindByIDTx(tx *gorm.DB, id uint) (*model.Product, error)
	// List returns all products ordered by name ascending.
	List(ctx context.Context) ([]model.Product, error)

	// AddStockTx increments quantity by delta.
	AddStockTx(tx *gorm.DB, id uint, delta int) error
	// RemoveStockGuardedTx decrements quantity by qty only when enough stock
	// is on hand. Returns the number of rows updated: 0 means the guard
	// rejected the decrement (or the product does not exist).
	RemoveStockGuardedTx(tx *gorm.DB, id uint, qty int) (int64, error)
	// SetStockTx replaces quantity unconditionally.
	SetStockTx(tx *gorm.DB, id uint, qty int) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) DB() *gorm.DB { return r.db }

func (r *productRepo) CreateTx(tx *gorm.DB, p *model.Product) error {
	return tx.Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByIDTx(tx *gorm.DB, id uint) (*model.Product, error) {
	var p model.Product
	err := tx.First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) AddStockTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).
		Update("quantity", gorm.Expr("quantity + ?", delta)).Error
}

func (r *productRepo) RemoveStockGuardedTx(tx *gorm.DB, id uint, qty int) (int64, error) {
	res := tx.Model(&model.Product{}).
		Where("id = ? AND quantity >= ?", id, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))
	return res.RowsAffected, res.Error
}

func (r *productRepo) SetStockTx(tx *gorm.DB, id uint, qty int) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).
		Update("quantity", qty).Error
}
