package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
)

// MemoryProducts хранит товары в памяти с той же семантикой версий, что и Postgres.
type MemoryProducts struct {
	mu       sync.RWMutex
	products map[string]entities.Product
}

func NewMemoryProducts(products ...entities.Product) *MemoryProducts {
	m := &MemoryProducts{products: make(map[string]entities.Product, len(products))}
	for _, p := range products {
		if p.Version == 0 {
			p.Version = 1
		}
		m.products[p.ID] = p
	}
	return m
}

func (m *MemoryProducts) GetProductByID(_ context.Context, productID string) (entities.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.products[productID]
	if !ok {
		return entities.Product{}, fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	return p, nil
}

func (m *MemoryProducts) UpdateStock(_ context.Context, productID string, version int64, stock, totalSales int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[productID]
	if !ok {
		return fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	if p.Version != version {
		return fmt.Errorf("%w: product %s changed since version %d", entities.ErrConflict, productID, version)
	}
	if stock < 0 {
		return fmt.Errorf("stock of product %s cannot be negative", productID)
	}

	p.StockQuantity = stock
	p.TotalSales = totalSales
	p.Version++
	m.products[productID] = p
	return nil
}
