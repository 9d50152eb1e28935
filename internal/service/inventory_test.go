package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/repo"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"
	mocks "github.com/SergeyBogomolovv/order-fulfillment/internal/service/mocks"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testRetry = utils.RetryConfig{
	MaxAttempts:  1000,
	InitialDelay: 10 * time.Microsecond,
	MaxDelay:     time.Millisecond,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id string, stock int) entities.Product {
	return entities.Product{
		ID:            id,
		SKU:           "SKU-" + id,
		Name:          "Product " + id,
		Price:         decimal.RequireFromString("10.00"),
		StockQuantity: stock,
		IsActive:      true,
		Version:       1,
	}
}

func TestInventory_ReserveRelease(t *testing.T) {
	products := repo.NewMemoryProducts(testProduct("A", 10))
	inv := service.NewInventory(discardLogger(), products, testRetry)
	ctx := context.Background()

	require.NoError(t, inv.Reserve(ctx, "A", 4))
	p, err := products.GetProductByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 6, p.StockQuantity)
	assert.Equal(t, 4, p.TotalSales)

	require.NoError(t, inv.Release(ctx, "A", 4))
	p, err = products.GetProductByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 10, p.StockQuantity)
	assert.Equal(t, 0, p.TotalSales)
}

func TestInventory_Reserve(t *testing.T) {
	inactive := testProduct("C", 10)
	inactive.IsActive = false

	testCases := []struct {
		name      string
		productID string
		qty       int
		wantErr   error
		wantStock int
	}{
		{name: "OK", productID: "A", qty: 5, wantStock: 0},
		{name: "insufficient stock", productID: "A", qty: 6, wantErr: entities.ErrInsufficientStock, wantStock: 5},
		{name: "zero quantity", productID: "A", qty: 0, wantErr: entities.ErrInvalidQuantity, wantStock: 5},
		{name: "unknown product", productID: "B", qty: 1, wantErr: entities.ErrNotFound},
		{name: "inactive product", productID: "C", qty: 1, wantErr: entities.ErrInsufficientStock},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			products := repo.NewMemoryProducts(testProduct("A", 5), inactive)
			inv := service.NewInventory(discardLogger(), products, testRetry)

			err := inv.Reserve(context.Background(), tc.productID, tc.qty)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tc.productID == "A" {
				p, err := products.GetProductByID(context.Background(), "A")
				require.NoError(t, err)
				assert.Equal(t, tc.wantStock, p.StockQuantity)
			}
		})
	}
}

func TestInventory_Release_SalesFloor(t *testing.T) {
	products := repo.NewMemoryProducts(testProduct("A", 1))
	inv := service.NewInventory(discardLogger(), products, testRetry)

	require.NoError(t, inv.Release(context.Background(), "A", 3))

	p, err := products.GetProductByID(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 4, p.StockQuantity)
	assert.Equal(t, 0, p.TotalSales)
}

func TestInventory_ConcurrentReserve(t *testing.T) {
	const (
		stock   = 5
		workers = 20
	)
	products := repo.NewMemoryProducts(testProduct("A", stock))
	inv := service.NewInventory(discardLogger(), products, testRetry)

	var (
		wg        sync.WaitGroup
		succeeded atomic.Int32
		rejected  atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := inv.Reserve(context.Background(), "A", 1)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, entities.ErrInsufficientStock):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, stock, succeeded.Load())
	assert.EqualValues(t, workers-stock, rejected.Load())

	p, err := products.GetProductByID(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 0, p.StockQuantity)
	assert.Equal(t, stock, p.TotalSales)
}

func TestInventory_Reserve_RetriesOnConflict(t *testing.T) {
	products := mocks.NewMockProductRepo(t)
	inv := service.NewInventory(discardLogger(), products, testRetry)

	stale := testProduct("A", 5)
	fresh := stale
	fresh.StockQuantity = 4
	fresh.Version = 2

	products.EXPECT().GetProductByID(mock.Anything, "A").Return(stale, nil).Once()
	products.EXPECT().UpdateStock(mock.Anything, "A", int64(1), 3, 2).Return(entities.ErrConflict).Once()
	products.EXPECT().GetProductByID(mock.Anything, "A").Return(fresh, nil).Once()
	products.EXPECT().UpdateStock(mock.Anything, "A", int64(2), 2, 2).Return(nil).Once()

	require.NoError(t, inv.Reserve(context.Background(), "A", 2))
}

func TestInventory_ReleaseAll_ContinuesAfterFailure(t *testing.T) {
	products := repo.NewMemoryProducts(testProduct("A", 1), testProduct("C", 1))
	inv := service.NewInventory(discardLogger(), products, testRetry)

	err := inv.ReleaseAll(context.Background(), []entities.OrderItem{
		{ProductID: "A", Quantity: 1},
		{ProductID: "missing", Quantity: 1},
		{ProductID: "C", Quantity: 2},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	assert.Contains(t, err.Error(), "missing")

	a, _ := products.GetProductByID(context.Background(), "A")
	c, _ := products.GetProductByID(context.Background(), "C")
	assert.Equal(t, 2, a.StockQuantity)
	assert.Equal(t, 3, c.StockQuantity)
}

func TestInventory_ReleaseAll_LocksInProductOrder(t *testing.T) {
	products := mocks.NewMockProductRepo(t)
	inv := service.NewInventory(discardLogger(), products, testRetry)

	var updated []string
	products.EXPECT().GetProductByID(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) (entities.Product, error) {
			return testProduct(id, 0), nil
		})
	products.EXPECT().UpdateStock(mock.Anything, mock.Anything, int64(1), mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string, _ int64, _, _ int) error {
			updated = append(updated, id)
			return nil
		})

	items := []entities.OrderItem{
		{ProductID: "C", Quantity: 1},
		{ProductID: "A", Quantity: 1},
		{ProductID: "B", Quantity: 1},
	}
	require.NoError(t, inv.ReleaseAll(context.Background(), items))

	assert.Equal(t, []string{"A", "B", "C"}, updated)
	assert.Equal(t, "C", items[0].ProductID)
}

func TestInventory_AbortedTransactionIsNotRetried(t *testing.T) {
	products := mocks.NewMockProductRepo(t)
	inv := service.NewInventory(discardLogger(), products, testRetry)

	products.EXPECT().GetProductByID(mock.Anything, "A").Return(testProduct("A", 5), nil).Once()
	products.EXPECT().UpdateStock(mock.Anything, "A", int64(1), 4, 1).Return(entities.ErrTxAborted).Once()

	err := inv.Reserve(context.Background(), "A", 1)
	assert.ErrorIs(t, err, entities.ErrTxAborted)
	assert.ErrorIs(t, err, entities.ErrConflict)
}

func TestInventory_ReleaseAll_StopsOnAbortedTransaction(t *testing.T) {
	products := mocks.NewMockProductRepo(t)
	inv := service.NewInventory(discardLogger(), products, testRetry)

	products.EXPECT().GetProductByID(mock.Anything, "A").Return(testProduct("A", 0), nil).Once()
	products.EXPECT().UpdateStock(mock.Anything, "A", int64(1), 1, 0).Return(entities.ErrTxAborted).Once()

	err := inv.ReleaseAll(context.Background(), []entities.OrderItem{
		{ProductID: "B", Quantity: 1},
		{ProductID: "A", Quantity: 1},
	})
	assert.ErrorIs(t, err, entities.ErrTxAborted)
}

func TestInventory_InvalidLines(t *testing.T) {
	inactive := testProduct("C", 10)
	inactive.IsActive = false
	products := repo.NewMemoryProducts(testProduct("A", 2), testProduct("B", 0), inactive)
	inv := service.NewInventory(discardLogger(), products, testRetry)

	invalid, err := inv.InvalidLines(context.Background(), []entities.CartItem{
		{ProductID: "A", Quantity: 2},
		{ProductID: "B", Quantity: 1},
		{ProductID: "C", Quantity: 1},
		{ProductID: "D", Quantity: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "D"}, invalid)

	ok, err := inv.CheckAvailability(context.Background(), "A", 3)
	require.NoError(t, err)
	assert.False(t, ok)
}
