package service

import (
	"context"

	"stockledger/internal/config"
	"stockledger/internal/dto"
	"stockledger/internal/repository"
)

// ReportService serves the read-only projections: the stock report and
// the movement history. The stock report intentionally mirrors
// ProductService.List; reporting callers get their own named read.
type ReportService interface {
	StockReport(ctx context.Context) (*dto.ProductListResponse, error)
	MovementHistory(ctx context.Context) (*dto.MovementListResponse, error)
}

type reportService struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	cfg       *config.Config
}

func NewReportService(products repository.ProductRepository, movements repository.MovementRepository, cfg *config.Config) ReportService {
	return &reportService{products: products, movements: movements, cfg: cfg}
}

func (s *reportService) StockReport(ctx context.Context) (*dto.ProductListResponse, error) {
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

func (s *reportService) MovementHistory(ctx context.Context) (*dto.MovementListResponse, error) {
	if s.cfg.Reduced() {
		return nil, ErrSalesDisabled
	}
	movements, err := s.movements.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.MovementListResponse{
		Data:  make([]dto.MovementResponse, 0, len(movements)),
		Total: int64(len(movements)),
	}
	for i := range movements {
		m := &movements[i]
		name := "-"
		if m.Product != nil {
			name = m.Product.Name
		}
		resp.Data = append(resp.Data, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			Product:     name,
			Kind:        m.Kind,
			Quantity:    m.Quantity,
			StockBefore: m.StockBefore,
			StockAfter:  m.StockAfter,
			Note:        m.Note,
			SaleID:      m.SaleID,
			CreatedAt:   m.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp, nil
}
