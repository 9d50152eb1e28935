package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var orderColumns = []string{
	"id", "order_number", "user_id", "status",
	"subtotal", "tax", "shipping_cost", "discount", "total",
	"coupon_code", "notes", "cancel_reason", "customer_email", "customer_phone",
	"payment_method", "payment_status", "payment_transaction_id", "payment_gateway", "payment_amount", "paid_at",
	"ship_full_name", "ship_street", "ship_city", "ship_state", "ship_zip_code", "ship_country", "ship_phone",
	"shipping_method", "tracking_number", "carrier", "estimated_delivery", "shipped_at",
	"created_at", "updated_at", "delivered_at", "cancelled_at", "version",
}

func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	a := o.Shipping.Address
	query, args := r.qb.Insert("orders").
		Columns(orderColumns...).
		Values(
			o.ID, o.OrderNumber, o.UserID, string(o.Status),
			o.Subtotal, o.Tax, o.ShippingCost, o.Discount, o.Total,
			nullString(o.CouponCode), nullString(o.Notes), nullString(o.CancelReason),
			nullString(o.CustomerEmail), nullString(o.CustomerPhone),
			string(o.Payment.Method), string(o.Payment.Status), nullString(o.Payment.TransactionID),
			nullString(o.Payment.Gateway), o.Payment.Amount, nullTime(o.Payment.PaidAt),
			nullString(a.FullName), nullString(a.Street), nullString(a.City), nullString(a.State),
			nullString(a.ZipCode), nullString(a.Country), nullString(a.Phone),
			nullString(o.Shipping.Method), nullString(o.Shipping.TrackingNumber), nullString(o.Shipping.Carrier),
			nullTime(o.Shipping.EstimatedDelivery), nullTime(o.Shipping.ShippedAt),
			o.CreatedAt, o.UpdatedAt, nullTime(o.DeliveredAt), nullTime(o.CancelledAt), 1,
		).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: order %s already exists", entities.ErrConflict, o.OrderNumber)
		}
		return fmt.Errorf("failed to save order: %w", txAborted(err))
	}

	if len(o.Items) > 0 {
		q := r.qb.Insert("order_items").
			Columns("order_id", "position", "product_id", "name", "sku", "image_url", "variant", "quantity", "price")
		for i, it := range o.Items {
			q = q.Values(
				o.ID, i, it.ProductID, it.Name, nullString(it.SKU),
				nullString(it.ImageURL), nullString(it.Variant), it.Quantity, it.Price,
			)
		}

		query, args = q.MustSql()
		if _, err := r.execContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to save order items: %w", err)
		}
	}

	return r.appendHistory(ctx, o.ID, o.History)
}

// UpdateOrder сохраняет изменяемые поля заказа, если его версия равна expectedVersion,
// и дописывает новые записи истории.
func (r *postgresRepo) UpdateOrder(ctx context.Context, o entities.Order, expectedVersion int64, appended []entities.StatusEntry) error {
	query, args := r.qb.Update("orders").
		Set("status", string(o.Status)).
		Set("cancel_reason", nullString(o.CancelReason)).
		Set("payment_status", string(o.Payment.Status)).
		Set("payment_transaction_id", nullString(o.Payment.TransactionID)).
		Set("payment_gateway", nullString(o.Payment.Gateway)).
		Set("paid_at", nullTime(o.Payment.PaidAt)).
		Set("tracking_number", nullString(o.Shipping.TrackingNumber)).
		Set("carrier", nullString(o.Shipping.Carrier)).
		Set("shipped_at", nullTime(o.Shipping.ShippedAt)).
		Set("updated_at", o.UpdatedAt).
		Set("delivered_at", nullTime(o.DeliveredAt)).
		Set("cancelled_at", nullTime(o.CancelledAt)).
		Set("version", expectedVersion+1).
		Where(sq.Eq{"id": o.ID, "version": expectedVersion}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", txAborted(err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: order %s changed since version %d", entities.ErrConflict, o.ID, expectedVersion)
	}

	return r.appendHistory(ctx, o.ID, appended)
}

func (r *postgresRepo) appendHistory(ctx context.Context, orderID string, entries []entities.StatusEntry) error {
	if len(entries) == 0 {
		return nil
	}

	q := r.qb.Insert("order_status_history").Columns("order_id", "status", "note", "created_at")
	for _, e := range entries {
		q = q.Values(orderID, string(e.Status), e.Note, e.Timestamp)
	}

	query, args := q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save status history: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"id": orderID})
}

func (r *postgresRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return r.getOrder(ctx, sq.Eq{"order_number": orderNumber})
}

func (r *postgresRepo) getOrder(ctx context.Context, where sq.Eq) (entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(where).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	orders, err := r.withDetails(ctx, []Order{order})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *postgresRepo) ListOrdersByUser(ctx context.Context, userID string, limit, offset uint64) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return r.withDetails(ctx, orders)
}

func (r *postgresRepo) LatestOrders(ctx context.Context, count int) ([]entities.Order, error) {
	query, args := r.qb.Select(orderColumns...).
		From("orders").
		OrderBy("created_at DESC").
		Limit(uint64(count)).
		MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}
	return r.withDetails(ctx, orders)
}

// withDetails догружает позиции и историю одним запросом на таблицу.
func (r *postgresRepo) withDetails(ctx context.Context, orders []Order) ([]entities.Order, error) {
	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	query, args := r.qb.Select(
		"order_id", "position", "product_id", "name", "sku",
		"image_url", "variant", "quantity", "price").
		From("order_items").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "position").
		MustSql()

	var items []OrderItem
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select order items: %w", err)
	}
	itemsMap := make(map[string][]OrderItem, len(ids))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	query, args = r.qb.Select("order_id", "status", "note", "created_at").
		From("order_status_history").
		Where(sq.Eq{"order_id": ids}).
		OrderBy("order_id", "id").
		MustSql()

	var history []StatusEntry
	if err := r.selectContext(ctx, &history, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select status history: %w", err)
	}
	historyMap := make(map[string][]StatusEntry, len(ids))
	for _, h := range history {
		historyMap[h.OrderID] = append(historyMap[h.OrderID], h)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID], historyMap[o.ID]))
	}
	return result, nil
}
