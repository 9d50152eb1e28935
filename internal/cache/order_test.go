package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderVersion(v int64, status entities.OrderStatus) entities.Order {
	return entities.Order{ID: "order-1", Status: status, Version: v}
}

func TestOrderCache_OlderVersionDoesNotOverwrite(t *testing.T) {
	c := NewOrderCache(10, time.Minute)

	// v5 закоммичен позже v4, но в кэш попал раньше
	c.Set("order-1", orderVersion(5, entities.StatusShipped))
	c.Set("order-1", orderVersion(4, entities.StatusProcessing))

	got, ok := c.Get("order-1")
	require.True(t, ok)
	assert.Equal(t, int64(5), got.Version)
	assert.Equal(t, entities.StatusShipped, got.Status)
}

func TestOrderCache_NewerVersionReplaces(t *testing.T) {
	c := NewOrderCache(10, time.Minute)

	c.Set("order-1", orderVersion(4, entities.StatusProcessing))
	c.Set("order-1", orderVersion(5, entities.StatusShipped))

	got, ok := c.Get("order-1")
	require.True(t, ok)
	assert.Equal(t, int64(5), got.Version)
}

func TestOrderCache_ConcurrentWritersKeepNewest(t *testing.T) {
	c := NewOrderCache(10, time.Minute)

	var wg sync.WaitGroup
	for v := int64(1); v <= 50; v++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Set("order-1", orderVersion(v, entities.StatusConfirmed))
		}()
	}
	wg.Wait()

	got, ok := c.Get("order-1")
	require.True(t, ok)
	assert.Equal(t, int64(50), got.Version)
	assert.Equal(t, 1, c.Size())
}
