package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

type postgresRepo struct {
	db  *sqlx.DB
	qb  sq.StatementBuilderType
	now func() time.Time
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db:  db,
		qb:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		now: time.Now,
	}
}

func (r *postgresRepo) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	query, args := r.qb.Select("id", "email", "phone", "name").
		From("users").
		Where(sq.Eq{"id": userID}).
		MustSql()

	var user User
	err := r.getContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(user), nil
}

var productColumns = []string{
	"id", "sku", "name", "image_url", "price", "sale_price",
	"stock_quantity", "total_sales", "is_active", "version",
}

func (r *postgresRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	query, args := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		MustSql()

	var product Product
	err := r.getContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, fmt.Errorf("%w: %s", entities.ErrProductNotFound, productID)
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

// UpdateStock меняет остаток, только если версия товара не изменилась с момента чтения.
func (r *postgresRepo) UpdateStock(ctx context.Context, productID string, version int64, stock, totalSales int) error {
	query, args := r.qb.Update("products").
		Set("stock_quantity", stock).
		Set("total_sales", totalSales).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", r.now()).
		Where(sq.Eq{"id": productID, "version": version}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", txAborted(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: product %s changed since version %d", entities.ErrConflict, productID, version)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// txAborted помечает ошибки, после которых postgres откатил транзакцию.
func txAborted(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case deadlockDetected, serializationFailure:
		return fmt.Errorf("%w: %s", entities.ErrTxAborted, pqErr.Message)
	}
	return err
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.Executor(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Executor(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.Executor(ctx, r.db).SelectContext(ctx, dest, query, args...)
}
