package cache

import (
	"context"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	lru "github.com/SergeyBogomolovv/order-fulfillment/pkg/cache"
)

// OrderCache хранит заказы в LRU и не даёт записи старой версии
// затереть более новую, если коммиты и записи в кэш разошлись по порядку.
type OrderCache struct {
	lru *lru.LRUCache[entities.Order]
}

func NewOrderCache(capacity int, ttl time.Duration, opts ...lru.Option) *OrderCache {
	return &OrderCache{lru: lru.NewLRUCache[entities.Order](capacity, ttl, opts...)}
}

func (c *OrderCache) Get(orderID string) (entities.Order, bool) {
	return c.lru.Get(orderID)
}

func (c *OrderCache) Set(orderID string, order entities.Order) {
	c.lru.SetIf(orderID, order, func(current entities.Order) bool {
		return current.Version <= order.Version
	})
}

func (c *OrderCache) Size() int {
	return c.lru.Size()
}

func (c *OrderCache) Start(ctx context.Context) error {
	return c.lru.Start(ctx)
}
