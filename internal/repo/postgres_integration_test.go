//go:build integration

package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/migrate"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/postgres"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/repo"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("orders"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := postgres.New(ctx, config.Postgres{
		Host:     host,
		Port:     port.Int(),
		DBName:   "orders",
		User:     "postgres",
		Password: "postgres",
		SSLMode:  "disable",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrate.Up(db))

	db.MustExec(`INSERT INTO users (id, email, phone, name) VALUES ('user-1', 'buyer@example.com', '+100000', 'Buyer')`)
	db.MustExec(`INSERT INTO products (id, sku, name, price, sale_price, stock_quantity) VALUES
		('A', 'SKU-A', 'Product A', 12.00, 10.00, 5),
		('B', 'SKU-B', 'Product B', 5.00, NULL, 3)`)

	return db
}

func TestPostgresRepo_Products(t *testing.T) {
	db := setupTestDB(t)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()

	p, err := r.GetProductByID(ctx, "A")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("10.00").Equal(p.EffectivePrice()))
	assert.Equal(t, int64(1), p.Version)

	require.NoError(t, r.UpdateStock(ctx, "A", p.Version, 3, 2))

	err = r.UpdateStock(ctx, "A", p.Version, 1, 4)
	assert.ErrorIs(t, err, entities.ErrConflict)

	p, err = r.GetProductByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, p.StockQuantity)
	assert.Equal(t, int64(2), p.Version)

	_, err = r.GetProductByID(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrProductNotFound)
}

func TestPostgresRepo_CartLifecycle(t *testing.T) {
	db := setupTestDB(t)
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)
	ctx := context.Background()

	first, err := r.GetOrCreateCart(ctx, "user-1")
	require.NoError(t, err)
	second, err := r.GetOrCreateCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	err = tx.Do(ctx, func(ctx context.Context) error {
		cart, err := r.LockCart(ctx, "user-1")
		if err != nil {
			return err
		}
		if err := cart.AddOrMergeItem(entities.CartItem{ProductID: "A", Quantity: 2, Price: decimal.RequireFromString("10.00"), Name: "Product A"}); err != nil {
			return err
		}
		if err := cart.SetShippingCost(decimal.RequireFromString("3.00")); err != nil {
			return err
		}
		cart.UpdatedAt = time.Now()
		return r.SaveCart(ctx, cart)
	})
	require.NoError(t, err)

	cart, err := r.GetOrCreateCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("23.00").Equal(cart.Total))
}

func TestPostgresRepo_OrderLifecycle(t *testing.T) {
	db := setupTestDB(t)
	r := repo.NewPostgresRepo(db)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	cart := entities.NewCart("cart-1", "user-1", now)
	require.NoError(t, cart.AddOrMergeItem(entities.CartItem{ProductID: "A", Quantity: 2, Price: decimal.RequireFromString("10.00"), Name: "Product A"}))
	require.NoError(t, cart.AddOrMergeItem(entities.CartItem{ProductID: "B", Quantity: 1, Price: decimal.RequireFromString("5.00"), Name: "Product B"}))
	user, err := r.GetUserByID(ctx, "user-1")
	require.NoError(t, err)

	order := entities.NewOrderFromCart("order-1", "ORD1", cart, user, entities.Checkout{PaymentMethod: entities.MethodCOD}, now)
	require.NoError(t, r.CreateOrder(ctx, order))

	dup := order
	dup.ID = "order-2"
	assert.ErrorIs(t, r.CreateOrder(ctx, dup), entities.ErrConflict)

	stored, err := r.GetOrderByNumber(ctx, "ORD1")
	require.NoError(t, err)
	assert.Equal(t, order.ID, stored.ID)
	assert.Len(t, stored.Items, 2)
	assert.Len(t, stored.History, 1)
	assert.Equal(t, int64(1), stored.Version)

	next, err := stored.Transition(entities.StatusConfirmed, "", now.Add(time.Second))
	require.NoError(t, err)
	require.NoError(t, r.UpdateOrder(ctx, next, stored.Version, next.History[len(stored.History):]))

	// повтор с устаревшей версией
	assert.ErrorIs(t, r.UpdateOrder(ctx, next, stored.Version, nil), entities.ErrConflict)

	stored, err = r.GetOrderByID(ctx, "order-1")
	require.NoError(t, err)
	assert.Equal(t, entities.StatusConfirmed, stored.Status)
	assert.Len(t, stored.History, 2)
	assert.Equal(t, int64(2), stored.Version)

	orders, err := r.ListOrdersByUser(ctx, "user-1", 10, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	latest, err := r.LatestOrders(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, latest, 1)

	_, err = r.GetOrderByID(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}
