package service

import (
	"context"
	"errors"
	"fmt"

	"stockledger/internal/config"
	"stockledger/internal/dto"
	"stockledger/internal/model"
	"stockledger/internal/repository"

	"gorm.io/gorm"
)

// ProductService owns product registration and stock adjustments.
type ProductService interface {
	Register(ctx context.Context, req dto.RegisterProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) (*dto.ProductListResponse, error)
	AdjustStock(ctx context.Context, id uint, req dto.AdjustStockRequest) (*dto.ProductResponse, error)
}

type productService struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	cfg       *config.Config
}

func NewProductService(products repository.ProductRepository, movements repository.MovementRepository, cfg *config.Config) ProductService {
	return &productService{products: products, movements: movements, cfg: cfg}
}

// translateStorage maps gorm errors to the ledger's typed kinds.
func translateStorage(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}

func (s *productService) Register(ctx context.Context, req dto.RegisterProductRequest) (*dto.ProductResponse, error) {
	if s.cfg.Reduced() && req.Code == nil {
		return nil, fmt.Errorf("%w: product code is required in reduced mode", ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	minStock := 5
	if req.MinStock != nil {
		minStock = *req.MinStock
	}

	p := &model.Product{
		Code:        req.Code,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
		Supplier:    req.Supplier,
		MinStock:    minStock,
	}

	// Insert and initial movement commit or fail together.
	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.products.CreateTx(tx, p); err != nil {
			return err
		}
		if s.cfg.Reduced() {
			return nil
		}
		return s.movements.CreateTx(tx, &model.Movement{
			ProductID:   p.ID,
			Kind:        model.MovementAdd,
			Quantity:    p.Quantity,
			StockBefore: 0,
			StockAfter:  p.Quantity,
			Note:        fmt.Sprintf("Initial registration: %s", p.Name),
		})
	})
	if txErr != nil {
		return nil, translateStorage(txErr)
	}
	return toProductResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorage(err)
	}
	return toProductResponse(p), nil
}

func (s *productService) List(ctx context.Context) (*dto.ProductListResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, 0, len(products)),
		Total: int64(len(products)),
	}
	for i := range products {
		resp.Data = append(resp.Data, *toProductResponse(&products[i]))
	}
	return resp, nil
}

// AdjustStock applies a manual add/remove/set and appends exactly one
// movement on success. A remove larger than the on-hand quantity fails
// with ErrInsufficientStock and leaves the quantity untouched; a
// negative set is rejected rather than clamped.
func (s *productService) AdjustStock(ctx context.Context, id uint, req dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorage(err)
	}

	switch req.Kind {
	case model.MovementAdd, model.MovementRemove:
		if req.Quantity <= 0 {
			return nil, fmt.Errorf("%w: %s requires a positive quantity", ErrInvalidInput, req.Kind)
		}
	case model.MovementSet:
		if req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
	default:
		return nil, fmt.Errorf("%w: unknown adjustment kind %q", ErrInvalidInput, req.Kind)
	}
	if req.Kind == model.MovementRemove && req.Quantity > p.Quantity {
		return nil, fmt.Errorf("%w: %d available", ErrInsufficientStock, p.Quantity)
	}

	txErr := runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		mov := &model.Movement{
			ProductID:   p.ID,
			Kind:        req.Kind,
			Quantity:    req.Quantity,
			StockBefore: p.Quantity,
		}
		switch req.Kind {
		case model.MovementAdd:
			mov.StockAfter = mov.StockBefore + req.Quantity
			mov.Note = "Manual addition"
			if err := s.products.AddStockTx(tx, p.ID, req.Quantity); err != nil {
				return err
			}
		case model.MovementRemove:
			mov.StockAfter = mov.StockBefore - req.Quantity
			mov.Note = "Manual removal"
			rows, err := s.products.RemoveStockGuardedTx(tx, p.ID, req.Quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return fmt.Errorf("%w: %d available", ErrInsufficientStock, mov.StockBefore)
			}
		case model.MovementSet:
			mov.StockAfter = req.Quantity
			mov.Note = fmt.Sprintf("Direct update to %d", req.Quantity)
			if err := s.products.SetStockTx(tx, p.ID, req.Quantity); err != nil {
				return err
			}
		}
		if s.cfg.Reduced() {
			return nil
		}
		return s.movements.CreateTx(tx, mov)
	})
	if txErr != nil {
		return nil, translateStorage(txErr)
	}

	updated, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorage(err)
	}
	return toProductResponse(updated), nil
}

func toProductResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Description: p.Description,
		Supplier:    p.Supplier,
		MinStock:    p.MinStock,
		LowStock:    p.LowStock(),
	}
}
