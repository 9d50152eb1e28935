package repo_test

import (
	"context"
	"testing"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProducts_UpdateStock(t *testing.T) {
	ctx := context.Background()
	store := repo.NewMemoryProducts(entities.Product{ID: "p1", StockQuantity: 5, IsActive: true})

	p, err := store.GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.Version)

	require.NoError(t, store.UpdateStock(ctx, "p1", p.Version, 3, 2))

	err = store.UpdateStock(ctx, "p1", p.Version, 1, 4)
	assert.ErrorIs(t, err, entities.ErrConflict)

	p, err = store.GetProductByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, p.StockQuantity)
	assert.Equal(t, 2, p.TotalSales)
	assert.Equal(t, int64(2), p.Version)

	_, err = store.GetProductByID(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
