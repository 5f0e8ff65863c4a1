package service_test

import (
	"context"
	"sort"
	"time"

	"stockledger/internal/model"
	"stockledger/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── In-memory ProductRepository stub ─────────────────────────────────────────

type stubProductRepo struct {
	products map[uint]*model.Product
	nextID   uint
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uint]*model.Product), nextID: 1}
}

func (r *stubProductRepo) CreateTx(_ *gorm.DB, p *model.Product) error {
	if p.Code != nil {
		for _, existing := range r.products {
			if existing.Code != nil && *existing.Code == *p.Code {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	if p.ID == 0 {
		p.ID = r.nextID
		r.nextID++
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) FindByIDTx(_ *gorm.DB, id uint) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]model.Product, error) {
	result := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, *p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *stubProductRepo) AddStockTx(_ *gorm.DB, id uint, delta int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity += delta
	return nil
}

// RemoveStockGuardedTx mirrors the SQL guard: a missing row or an
// undersized quantity both report zero rows updated, not an error.
func (r *stubProductRepo) RemoveStockGuardedTx(_ *gorm.DB, id uint, qty int) (int64, error) {
	p, ok := r.products[id]
	if !ok || p.Quantity < qty {
		return 0, nil
	}
	p.Quantity -= qty
	return 1, nil
}

func (r *stubProductRepo) SetStockTx(_ *gorm.DB, id uint, qty int) error {
	p, ok := r.products[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantity = qty
	return nil
}

// In-memory stub: nil DB makes runTx invoke the callback directly.
func (r *stubProductRepo) DB() *gorm.DB { return nil }

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── In-memory SaleRepository stub ────────────────────────────────────────────

type stubSaleRepo struct {
	sales    map[uint]*model.Sale
	order    []uint // insertion order, oldest first
	nextID   uint
	products *stubProductRepo
}

func newStubSaleRepo(products *stubProductRepo) *stubSaleRepo {
	return &stubSaleRepo{sales: make(map[uint]*model.Sale), nextID: 1, products: products}
}

func (r *stubSaleRepo) CreateTx(_ *gorm.DB, s *model.Sale) error {
	if s.ID == 0 {
		s.ID = r.nextID
		r.nextID++
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	for i := range s.Items {
		s.Items[i].SaleID = s.ID
	}
	cp := *s
	cp.Items = append([]model.SaleItem(nil), s.Items...)
	r.sales[s.ID] = &cp
	r.order = append(r.order, s.ID)
	return nil
}

// withProducts emulates Preload("Items.Product").
func (r *stubSaleRepo) withProducts(s *model.Sale) *model.Sale {
	cp := *s
	cp.Items = append([]model.SaleItem(nil), s.Items...)
	for i := range cp.Items {
		if p, ok := r.products.products[cp.Items[i].ProductID]; ok {
			pc := *p
			cp.Items[i].Product = &pc
		}
	}
	return &cp
}

func (r *stubSaleRepo) FindByID(_ context.Context, id uint) (*model.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r.withProducts(s), nil
}

func (r *stubSaleRepo) List(_ context.Context) ([]model.Sale, error) {
	result := make([]model.Sale, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		result = append(result, *r.withProducts(r.sales[r.order[i]]))
	}
	return result, nil
}

func (r *stubSaleRepo) DB() *gorm.DB { return nil }

var _ repository.SaleRepository = (*stubSaleRepo)(nil)

// ── In-memory MovementRepository stub ────────────────────────────────────────

type stubMovementRepo struct {
	movements []model.Movement
	products  *stubProductRepo
	nextID    uint
}

func newStubMovementRepo(products *stubProductRepo) *stubMovementRepo {
	return &stubMovementRepo{products: products, nextID: 1}
}

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.Movement) error {
	if m.ID == 0 {
		m.ID = r.nextID
		r.nextID++
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	r.movements = append(r.movements, *m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context) ([]model.Movement, error) {
	result := make([]model.Movement, 0, len(r.movements))
	for i := len(r.movements) - 1; i >= 0; i-- {
		m := r.movements[i]
		if p, ok := r.products.products[m.ProductID]; ok {
			pc := *p
			m.Product = &pc
		}
		result = append(result, m)
	}
	return result, nil
}

var _ repository.MovementRepository = (*stubMovementRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func seedProduct(repo *stubProductRepo, name string, qty int, price float64) *model.Product {
	p := &model.Product{
		Name:     name,
		Quantity: qty,
		Price:    decimal.NewFromFloat(price),
		MinStock: 5,
	}
	_ = repo.CreateTx(nil, p)
	return p
}
