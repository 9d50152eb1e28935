package cache

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*CartCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewCartCache(client, 15*time.Minute), mr
}

func testCart(userID string) entities.Cart {
	cart := entities.NewCart("cart-1", userID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	_ = cart.AddOrMergeItem(entities.CartItem{ProductID: "A", Quantity: 2, Price: decimal.RequireFromString("10.50"), Name: "Product A"})
	_ = cart.ApplyCoupon("SAVE10", decimal.RequireFromString("2.10"))
	return cart
}

func fill(t *testing.T, cache *CartCache, cart entities.Cart) error {
	t.Helper()
	gen, err := cache.Generation(context.Background(), cart.UserID)
	if err != nil {
		return err
	}
	_, err = cache.SetIfGeneration(context.Background(), cart, gen)
	return err
}

func TestCartCache_SetAndGet(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, fill(t, cache, testCart("user-1")))
	assert.True(t, mr.Exists("cart:user-1"))

	got, err := cache.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("21.00").Equal(got.Subtotal))
	assert.True(t, decimal.RequireFromString("18.90").Equal(got.Total))
	assert.Equal(t, "SAVE10", got.CouponCode)
}

func TestCartCache_Miss(t *testing.T) {
	cache, _ := setupTestRedis(t)

	_, err := cache.Get(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestCartCache_InvalidJSON(t *testing.T) {
	cache, mr := setupTestRedis(t)
	require.NoError(t, mr.Set("cart:user-1", "{broken"))

	_, err := cache.Get(context.Background(), "user-1")
	assert.ErrorContains(t, err, "unmarshal cart failed")
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestCartCache_TTLWithJitter(t *testing.T) {
	cache, mr := setupTestRedis(t)

	require.NoError(t, fill(t, cache, testCart("user-1")))

	ttl := mr.TTL("cart:user-1")
	assert.GreaterOrEqual(t, ttl, 15*time.Minute)
	assert.Less(t, ttl, 20*time.Minute)
}

func TestCartCache_Delete(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, fill(t, cache, testCart("user-1")))
	require.NoError(t, cache.Delete(ctx, "user-1"))
	assert.False(t, mr.Exists("cart:user-1"))

	assert.NoError(t, cache.Delete(ctx, "nobody"))
}

func TestCartCache_DeleteBumpsGeneration(t *testing.T) {
	cache, _ := setupTestRedis(t)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	require.NoError(t, cache.Delete(ctx, "user-1"))
	require.NoError(t, cache.Delete(ctx, "user-1"))

	gen, err = cache.Generation(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), gen)
}

func TestCartCache_SetIfGeneration(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	gen, err := cache.Generation(ctx, "user-1")
	require.NoError(t, err)

	written, err := cache.SetIfGeneration(ctx, testCart("user-1"), gen)
	require.NoError(t, err)
	assert.True(t, written)
	assert.True(t, mr.Exists("cart:user-1"))

	ttl := mr.TTL("cart:user-1")
	assert.GreaterOrEqual(t, ttl, 15*time.Minute)
	assert.Less(t, ttl, 20*time.Minute)
}

func TestCartCache_FillAfterInvalidateIsSkipped(t *testing.T) {
	cache, mr := setupTestRedis(t)
	ctx := context.Background()

	// промах: поколение прочитано, корзина загружается из базы
	gen, err := cache.Generation(ctx, "user-1")
	require.NoError(t, err)
	stale := testCart("user-1")

	// тем временем изменение корзины закоммичено и кэш сброшен
	require.NoError(t, cache.Delete(ctx, "user-1"))

	written, err := cache.SetIfGeneration(ctx, stale, gen)
	require.NoError(t, err)
	assert.False(t, written)
	assert.False(t, mr.Exists("cart:user-1"))

	_, err = cache.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
