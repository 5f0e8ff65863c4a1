package repository

import (
	"context"

	"stockledger/internal/model"

	"gorm.io/gorm"
)

type MovementRepository interface {
	CreateTx(tx *gorm.DB, m *model.Movement) error
	// List returns the full movement history, newest first, with the
	// product preloaded (nil when the product row is missing).
	List(ctx context.Context) ([]model.Movement, error)
}

type movementRepo struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) MovementRepository {
	return &movementRepo{db: db}
}

func (r *movementRepo) CreateTx(tx *gorm.DB, m *model.Movement) error {
	return tx.Create(m).Error
}

func (r *movementRepo) List(ctx context.Context) ([]model.Movement, error) {
	var movements []model.Movement
	err := r.db.WithContext(ctx).Preload("Product").
		Order("created_at DESC").
		Find(&movements).Error
	return movements, err
}
