package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/redis/go-redis/v9"
)

var ErrCacheMiss = errors.New("cache miss")

// Максимальная добавка к TTL, чтобы ключи не истекали одновременно.
const maxJitter = 5 * time.Minute

func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

type CartCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewCartCache(client *redis.Client, baseTTL time.Duration) *CartCache {
	return &CartCache{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (c *CartCache) Get(ctx context.Context, userID string) (entities.Cart, error) {
	data, err := c.client.Get(ctx, cacheKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Cart{}, ErrCacheMiss
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("redis get failed: %w", err)
	}

	var cart entities.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return entities.Cart{}, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return cart, nil
}

// fillScript пишет корзину, только если поколение не сдвинулось с момента чтения из базы.
var fillScript = redis.NewScript(`
local gen = redis.call("GET", KEYS[2]) or "0"
if gen ~= ARGV[2] then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[3])
return 1
`)

// Generation возвращает поколение корзины. Каждый Delete его увеличивает.
func (c *CartCache) Generation(ctx context.Context, userID string) (int64, error) {
	gen, err := c.client.Get(ctx, genKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get generation failed: %w", err)
	}
	return gen, nil
}

// SetIfGeneration кладёт корзину, прочитанную при поколении gen. Если с тех пор
// корзину инвалидировали, запись пропускается и возвращается false.
func (c *CartCache) SetIfGeneration(ctx context.Context, cart entities.Cart, gen int64) (bool, error) {
	data, err := json.Marshal(cart)
	if err != nil {
		return false, fmt.Errorf("marshal cart failed: %w", err)
	}

	ttl := c.baseTTL + rand.N(maxJitter)
	keys := []string{cacheKey(cart.UserID), genKey(cart.UserID)}
	written, err := fillScript.Run(ctx, c.client, keys, data, gen, ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("redis fill failed: %w", err)
	}
	return written == 1, nil
}

// Delete удаляет корзину и сдвигает поколение, чтобы запоздавшее заполнение не вернуло старую версию.
func (c *CartCache) Delete(ctx context.Context, userID string) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, cacheKey(userID))
		pipe.Incr(ctx, genKey(userID))
		pipe.Expire(ctx, genKey(userID), c.baseTTL+maxJitter)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(userID string) string {
	return "cart:" + userID
}

func genKey(userID string) string {
	return "cart-gen:" + userID
}
