package repository

import (
	"context"

	"stockledger/internal/model"

	"gorm.io/gorm"
)

type SaleRepository interface {
	// CreateTx inserts the sale and its line items in one statement batch;
	// callers must pass the live transaction.
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uint) (*model.Sale, error)
	// List returns all sales, newest first, with items and product names.
	List(ctx context.Context) ([]model.Sale, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) DB() *gorm.DB { return r.db }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uint) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items.Product").First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *saleRepo) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.WithContext(ctx).Preload("Items.Product").
		Order("created_at DESC").
		Find(&sales).Error
	return sales, err
}
