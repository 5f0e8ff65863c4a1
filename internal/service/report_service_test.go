package service_test

import (
	"context"
	"testing"

	"stockledger/internal/dto"
	"stockledger/internal/model"
	"stockledger/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() (service.ReportService, *stubProductRepo, *stubMovementRepo) {
	products := newStubProductRepo()
	movements := newStubMovementRepo(products)
	svc := service.NewReportService(products, movements, fullConfig())
	return svc, products, movements
}

func TestStockReportOrderedByName(t *testing.T) {
	svc, products, _ := reportFixture()
	seedProduct(products, "Zebra Notebook", 10, 3.50)
	seedProduct(products, "Apple Charger", 2, 12.00)
	seedProduct(products, "Mouse Pad", 7, 1.25)

	resp, err := svc.StockReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), resp.Total)

	names := make([]string, 0, len(resp.Data))
	for _, p := range resp.Data {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Apple Charger", "Mouse Pad", "Zebra Notebook"}, names)
}

func TestStockReportFlagsLowStock(t *testing.T) {
	svc, products, _ := reportFixture()
	seedProduct(products, "Plenty", 50, 1.00)
	low := seedProduct(products, "Scarce", 3, 1.00) // MinStock defaults to 5

	resp, err := svc.StockReport(context.Background())
	require.NoError(t, err)

	byName := make(map[string]dto.ProductResponse, len(resp.Data))
	for _, p := range resp.Data {
		byName[p.Name] = p
	}
	assert.False(t, byName["Plenty"].LowStock)
	assert.True(t, byName["Scarce"].LowStock)
	assert.Equal(t, low.Quantity, byName["Scarce"].Quantity)
}

func TestMovementHistoryNewestFirst(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo(products)
	prodSvc := service.NewProductService(products, movements, fullConfig())
	reportSvc := service.NewReportService(products, movements, fullConfig())

	created, err := prodSvc.Register(context.Background(), dto.RegisterProductRequest{
		Name:     "Widget",
		Quantity: 10,
		Price:    decimal.NewFromFloat(2.00),
	})
	require.NoError(t, err)

	_, err = prodSvc.AdjustStock(context.Background(), created.ID, dto.AdjustStockRequest{Kind: model.MovementAdd, Quantity: 5})
	require.NoError(t, err)
	_, err = prodSvc.AdjustStock(context.Background(), created.ID, dto.AdjustStockRequest{Kind: model.MovementRemove, Quantity: 3})
	require.NoError(t, err)

	resp, err := reportSvc.MovementHistory(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), resp.Total)

	// Newest first: remove, add, initial registration.
	assert.Equal(t, model.MovementRemove, resp.Data[0].Kind)
	assert.Equal(t, 3, resp.Data[0].Quantity)
	assert.Equal(t, 15, resp.Data[0].StockBefore)
	assert.Equal(t, 12, resp.Data[0].StockAfter)

	assert.Equal(t, model.MovementAdd, resp.Data[1].Kind)
	assert.Equal(t, model.MovementAdd, resp.Data[2].Kind)
	assert.Equal(t, 0, resp.Data[2].StockBefore)

	for _, m := range resp.Data {
		assert.Equal(t, "Widget", m.Product)
	}
}

func TestMovementHistoryMissingProductFallback(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo(products)
	svc := service.NewReportService(products, movements, fullConfig())

	// A movement whose product row no longer exists still lists,
	// with "-" in place of the name.
	require.NoError(t, movements.CreateTx(nil, &model.Movement{
		ProductID:   99,
		Kind:        model.MovementAdd,
		Quantity:    4,
		StockBefore: 0,
		StockAfter:  4,
		Note:        "orphaned",
	}))

	resp, err := svc.MovementHistory(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "-", resp.Data[0].Product)
	assert.Equal(t, uint(99), resp.Data[0].ProductID)
}

func TestMovementHistoryDisabledInReducedMode(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo(products)
	svc := service.NewReportService(products, movements, reducedConfig())

	_, err := svc.MovementHistory(context.Background())
	assert.ErrorIs(t, err, service.ErrSalesDisabled)
}

func TestStockReportAvailableInReducedMode(t *testing.T) {
	products := newStubProductRepo()
	movements := newStubMovementRepo(products)
	svc := service.NewReportService(products, movements, reducedConfig())
	seedProduct(products, "Widget", 4, 1.00)

	resp, err := svc.StockReport(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}
