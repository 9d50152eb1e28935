package repo

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var cartColumns = []string{
	"id", "user_id", "subtotal", "tax", "shipping_cost", "discount", "total",
	"coupon_code", "shipping_method_id", "created_at", "updated_at",
}

// GetOrCreateCart идемпотентно создаёт корзину пользователя и возвращает её.
func (r *postgresRepo) GetOrCreateCart(ctx context.Context, userID string) (entities.Cart, error) {
	return r.loadCart(ctx, userID, false)
}

// LockCart работает как GetOrCreateCart, но берёт блокировку строки до конца транзакции.
// Вызывать только внутри trm.Manager.Do.
func (r *postgresRepo) LockCart(ctx context.Context, userID string) (entities.Cart, error) {
	return r.loadCart(ctx, userID, true)
}

func (r *postgresRepo) loadCart(ctx context.Context, userID string, forUpdate bool) (entities.Cart, error) {
	now := r.now()
	query, args := r.qb.Insert("carts").
		Columns("id", "user_id", "created_at", "updated_at").
		Values(uuid.NewString(), userID, now, now).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to create cart: %w", err)
	}

	q := r.qb.Select(cartColumns...).
		From("carts").
		Where(sq.Eq{"user_id": userID})
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}
	query, args = q.MustSql()

	var cart Cart
	if err := r.getContext(ctx, &cart, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}

	query, args = r.qb.Select(
		"cart_id", "position", "product_id", "quantity", "price",
		"name", "image_url", "sku", "variant").
		From("cart_items").
		Where(sq.Eq{"cart_id": cart.ID}).
		OrderBy("position").
		MustSql()

	var items []CartItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart items: %w", err)
	}

	return CartToEntity(cart, items), nil
}

// SaveCart перезаписывает итоги и позиции корзины.
func (r *postgresRepo) SaveCart(ctx context.Context, cart entities.Cart) error {
	query, args := r.qb.Update("carts").
		Set("subtotal", cart.Subtotal).
		Set("tax", cart.Tax).
		Set("shipping_cost", cart.ShippingCost).
		Set("discount", cart.Discount).
		Set("total", cart.Total).
		Set("coupon_code", nullString(cart.CouponCode)).
		Set("shipping_method_id", nullString(cart.ShippingMethodID)).
		Set("updated_at", cart.UpdatedAt).
		Where(sq.Eq{"id": cart.ID}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cart: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return entities.ErrCartNotFound
	}

	query, args = r.qb.Delete("cart_items").
		Where(sq.Eq{"cart_id": cart.ID}).
		MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	if len(cart.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("cart_items").
		Columns("cart_id", "position", "product_id", "quantity", "price",
			"name", "image_url", "sku", "variant")
	for i, it := range cart.Items {
		q = q.Values(
			cart.ID, i, it.ProductID, it.Quantity, it.Price,
			it.Name, nullString(it.ImageURL), nullString(it.SKU), nullString(it.Variant),
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save cart items: %w", err)
	}
	return nil
}
