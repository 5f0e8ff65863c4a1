package service

import (
	"context"
	"fmt"

	"stockledger/internal/config"
	"stockledger/internal/dto"
	"stockledger/internal/infra"
	"stockledger/internal/model"
	"stockledger/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleService owns cart settlement and the sales report.
type SaleService interface {
	Register(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uint) (*dto.SaleResponse, error)
	Report(ctx context.Context) (*dto.SalesReportResponse, error)
}

type saleService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	movements repository.MovementRepository
	receipts  *infra.ReceiptWriter
	cfg       *config.Config
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	movements repository.MovementRepository,
	receipts *infra.ReceiptWriter,
	cfg *config.Config,
) SaleService {
	return &saleService{sales: sales, products: products, movements: movements, receipts: receipts, cfg: cfg}
}

// Register settles a cart as a persisted sale:
//  1. Validate phase: every line's product must exist and have enough
//     stock. The pass completes for all lines before any mutation.
//  2. Compute phase: subtotal = price*qty - itemDiscount per line,
//     final = gross - totalDiscount. No floor at zero: an oversized
//     discount drives the final total negative and is accepted.
//  3. Commit phase, one transaction: sale row + line items, guarded
//     stock decrement per line, one sale movement per line. Any failure
//     rolls back everything.
func (s *saleService) Register(ctx context.Context, req dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if s.cfg.Reduced() {
		return nil, ErrSalesDisabled
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if req.TotalDiscount.IsNegative() {
		return nil, fmt.Errorf("%w: total discount must not be negative", ErrInvalidInput)
	}

	type resolvedItem struct {
		productID uint
		name      string
		price     decimal.Decimal
		quantity  int
		discount  decimal.Decimal
		subtotal  decimal.Decimal
	}

	// 1. Validate phase. Prices are captured here, not re-read later.
	var resolved []resolvedItem
	gross := decimal.Zero
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive for product %d", ErrInvalidInput, item.ProductID)
		}
		if item.ItemDiscount.IsNegative() {
			return nil, fmt.Errorf("%w: item discount must not be negative for product %d", ErrInvalidInput, item.ProductID)
		}
		p, err := s.products.FindByID(ctx, item.ProductID)
		if err != nil {
			if translated := translateStorage(err); translated == ErrNotFound {
				return nil, fmt.Errorf("%w: product %d", ErrNotFound, item.ProductID)
			}
			return nil, err
		}
		if p.Quantity < item.Quantity {
			return nil, fmt.Errorf("%w: product %d has %d available", ErrInsufficientStock, p.ID, p.Quantity)
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Sub(item.ItemDiscount)
		gross = gross.Add(subtotal)
		resolved = append(resolved, resolvedItem{
			productID: p.ID,
			name:      p.Name,
			price:     p.Price,
			quantity:  item.Quantity,
			discount:  item.ItemDiscount,
			subtotal:  subtotal,
		})
	}

	// 2. Compute phase.
	final := gross.Sub(req.TotalDiscount)

	// 3. Commit phase.
	sale := model.Sale{Total: final, Discount: req.TotalDiscount}
	for _, r := range resolved {
		sale.Items = append(sale.Items, model.SaleItem{
			ProductID:    r.productID,
			Quantity:     r.quantity,
			UnitPrice:    r.price,
			ItemDiscount: r.discount,
		})
	}

	txErr := runTx(ctx, s.sales.DB(), func(tx *gorm.DB) error {
		if err := s.sales.CreateTx(tx, &sale); err != nil {
			return err
		}
		for _, r := range resolved {
			before, err := s.products.FindByIDTx(tx, r.productID)
			if err != nil {
				return err
			}
			stockBefore := before.Quantity
			rows, err := s.products.RemoveStockGuardedTx(tx, r.productID, r.quantity)
			if err != nil {
				return err
			}
			if rows == 0 {
				return fmt.Errorf("%w: product %d has %d available", ErrInsufficientStock, r.productID, stockBefore)
			}
			saleRef := sale.ID
			mov := &model.Movement{
				ProductID:   r.productID,
				Kind:        model.MovementSale,
				Quantity:    r.quantity,
				StockBefore: stockBefore,
				StockAfter:  stockBefore - r.quantity,
				Note:        fmt.Sprintf("Sale #%d", sale.ID),
				SaleID:      &saleRef,
			}
			if err := s.movements.CreateTx(tx, mov); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resp := &dto.SaleResponse{
		ID:         sale.ID,
		GrossTotal: gross,
		Discount:   req.TotalDiscount,
		Total:      final,
		CreatedAt:  sale.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	receipt := infra.Receipt{
		SaleID:    sale.ID,
		CreatedAt: sale.CreatedAt,
		Gross:     gross,
		Discount:  req.TotalDiscount,
		Total:     final,
	}
	for _, r := range resolved {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:    r.productID,
			Product:      r.name,
			Quantity:     r.quantity,
			UnitPrice:    r.price,
			ItemDiscount: r.discount,
			Subtotal:     r.subtotal,
		})
		receipt.Lines = append(receipt.Lines, infra.ReceiptLine{
			Name:      r.name,
			Quantity:  r.quantity,
			UnitPrice: r.price,
			Subtotal:  r.subtotal,
		})
	}

	resp.Receipt = receipt.Text()
	if s.receipts != nil {
		// Persisting the artifact is best-effort; the sale is already durable.
		path, err := s.receipts.Save(receipt)
		if err != nil {
			log.Warn().Err(err).Uint("sale_id", sale.ID).Msg("failed to persist receipt")
		} else {
			resp.ReceiptPath = path
		}
	}
	return resp, nil
}

func (s *saleService) Get(ctx context.Context, id uint) (*dto.SaleResponse, error) {
	if s.cfg.Reduced() {
		return nil, ErrSalesDisabled
	}
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, translateStorage(err)
	}
	return saleToResponse(sale), nil
}

// Report returns every sale with its nested items, newest first.
func (s *saleService) Report(ctx context.Context) (*dto.SalesReportResponse, error) {
	if s.cfg.Reduced() {
		return nil, ErrSalesDisabled
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.SalesReportResponse{
		Data:  make([]dto.SaleResponse, 0, len(sales)),
		Total: int64(len(sales)),
	}
	for i := range sales {
		resp.Data = append(resp.Data, *saleToResponse(&sales[i]))
	}
	return resp, nil
}

func saleToResponse(v *model.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:        v.ID,
		Discount:  v.Discount,
		Total:     v.Total,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	gross := decimal.Zero
	for i := range v.Items {
		item := &v.Items[i]
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		subtotal := item.Subtotal()
		gross = gross.Add(subtotal)
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:    item.ProductID,
			Product:      name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			ItemDiscount: item.ItemDiscount,
			Subtotal:     subtotal,
		})
	}
	resp.GrossTotal = gross
	return resp
}
