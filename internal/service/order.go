package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, order entities.Order) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string, limit, offset uint64) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	// UpdateOrder должен вернуть entities.ErrConflict, если версия заказа не равна expectedVersion.
	UpdateOrder(ctx context.Context, order entities.Order, expectedVersion int64, appended []entities.StatusEntry) error
}

type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
}

type Inventory interface {
	Reserve(ctx context.Context, productID string, qty int) error
	ReleaseAll(ctx context.Context, items []entities.OrderItem) error
	InvalidLines(ctx context.Context, items []entities.CartItem) ([]string, error)
}

// OrderCache не должен заменять закэшированный заказ версией старше.
type OrderCache interface {
	Get(key string) (entities.Order, bool)
	Set(key string, value entities.Order)
}

// Notifier отправляет уведомления асинхронно. Методы не должны блокироваться.
type Notifier interface {
	NotifyOrderConfirmation(order entities.Order)
	NotifyStatusUpdate(order entities.Order, previous entities.OrderStatus)
}

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	carts     CartRepo
	cartCache CartCache
	users     UserRepo
	stock     Inventory
	cache     OrderCache
	notifier  Notifier
	updater   *orderUpdater
	retry     utils.RetryConfig
	now       func() time.Time
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	carts CartRepo,
	cartCache CartCache,
	users UserRepo,
	stock Inventory,
	cache OrderCache,
	notifier Notifier,
	retry utils.RetryConfig,
) *orderService {
	updater := newOrderUpdater(txManager, orders, cache, retry)
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		carts:     carts,
		cartCache: cartCache,
		users:     users,
		stock:     stock,
		cache:     cache,
		notifier:  notifier,
		updater:   updater,
		retry:     updater.retry,
		now:       time.Now,
	}
}

// CreateOrderFromCart оформляет заказ из корзины пользователя. Создание заказа,
// очистка корзины и списание остатков выполняются в одной транзакции.
// При конфликте транзакция повторяется целиком.
func (s *orderService) CreateOrderFromCart(ctx context.Context, userID string, checkout entities.Checkout) (entities.Order, error) {
	start := time.Now()
	defer func() { checkoutDuration.Observe(time.Since(start).Seconds()) }()

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		checkoutFailures.WithLabelValues("user").Inc()
		return entities.Order{}, fmt.Errorf("failed to get user: %w", err)
	}

	var order entities.Order
	err = utils.RetryContext(ctx, s.retry, func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.checkout(ctx, userID, user, checkout, &order)
		})
	})
	if err != nil {
		checkoutFailures.WithLabelValues(failureReason(err)).Inc()
		return entities.Order{}, err
	}

	if err := s.cartCache.Delete(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate cart cache", slog.String("user_id", userID), slog.Any("error", err))
	}
	s.cache.Set(order.ID, order)
	ordersCreated.Inc()
	s.logger.Info("order created",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.String("total", order.Total.StringFixed(2)),
	)

	s.notifier.NotifyOrderConfirmation(order)
	return order, nil
}

func (s *orderService) checkout(ctx context.Context, userID string, user entities.User, checkout entities.Checkout, order *entities.Order) error {
	cart, err := s.carts.LockCart(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to lock cart: %w", err)
	}
	if cart.IsEmpty() {
		return entities.ErrEmptyCart
	}

	invalid, err := s.stock.InvalidLines(ctx, cart.Items)
	if err != nil {
		return err
	}
	if len(invalid) > 0 {
		return &entities.InvalidCartError{ProductIDs: invalid}
	}

	now := s.now()
	created := entities.NewOrderFromCart(uuid.NewString(), newOrderNumber(now), cart, user, checkout, now)
	if err := s.orders.CreateOrder(ctx, created); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	cart.Clear()
	cart.UpdatedAt = now
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	// Строки товаров блокируются в порядке ProductID, иначе встречные заказы ловят deadlock.
	for _, it := range byProductID(created.Items) {
		if err := s.stock.Reserve(ctx, it.ProductID, it.Quantity); err != nil {
			return fmt.Errorf("failed to reserve product %s: %w", it.ProductID, err)
		}
	}

	*order = created
	return nil
}

// TransitionStatus переводит заказ в статус to по таблице переходов.
// Отмена дополнительно возвращает товары на склад.
func (s *orderService) TransitionStatus(ctx context.Context, orderID string, to entities.OrderStatus, note string) (entities.Order, error) {
	if to == entities.StatusCancelled {
		return s.CancelOrder(ctx, orderID, note)
	}

	var previous entities.OrderStatus
	order, err := s.updater.update(ctx, orderID, func(_ context.Context, order entities.Order) (entities.Order, error) {
		previous = order.Status
		return order.Transition(to, note, s.now())
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.afterTransition(order, previous)
	return order, nil
}

func (s *orderService) ShipOrder(ctx context.Context, orderID, trackingNumber, carrier string) (entities.Order, error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return entities.Order{}, fmt.Errorf("%w: tracking number is required", entities.ErrBadRequest)
	}

	var previous entities.OrderStatus
	order, err := s.updater.update(ctx, orderID, func(_ context.Context, order entities.Order) (entities.Order, error) {
		previous = order.Status
		next, err := order.Transition(entities.StatusShipped, "Order shipped with tracking number: "+trackingNumber, s.now())
		if err != nil {
			return entities.Order{}, err
		}
		next.Shipping.TrackingNumber = trackingNumber
		next.Shipping.Carrier = carrier
		return next, nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.afterTransition(order, previous)
	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, orderID, reason string) (entities.Order, error) {
	reason = strings.TrimSpace(reason)
	note := "Order cancelled. Reason: " + reason
	if reason == "" {
		note += "Not specified"
	}

	var previous entities.OrderStatus
	order, err := s.updater.update(ctx, orderID, func(ctx context.Context, order entities.Order) (entities.Order, error) {
		if !order.Status.Cancellable() {
			return entities.Order{}, fmt.Errorf("%w: order is %s", entities.ErrOrderNotCancellable, order.Status)
		}

		previous = order.Status
		next, err := order.Transition(entities.StatusCancelled, note, s.now())
		if err != nil {
			return entities.Order{}, err
		}
		next.CancelReason = reason

		// Частичный сбой возврата не отменяет отмену заказа.
		if err := s.stock.ReleaseAll(ctx, order.Items); err != nil {
			if errors.Is(err, entities.ErrTxAborted) {
				return entities.Order{}, err
			}
			s.logger.Error("order cancelled with unreleased stock",
				slog.String("order_id", order.ID), slog.Any("error", err))
		}
		return next, nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.afterTransition(order, previous)
	return order, nil
}

func (s *orderService) afterTransition(order entities.Order, previous entities.OrderStatus) {
	orderTransitions.WithLabelValues(string(order.Status)).Inc()
	s.logger.Info("order status changed",
		slog.String("order_id", order.ID),
		slog.String("from", string(previous)),
		slog.String("to", string(order.Status)),
	)
	s.notifier.NotifyStatusUpdate(order, previous)
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if order, ok := s.cache.Get(orderID); ok {
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.orders.GetOrderByID(ctx, orderID)
		return err
	}
	cfg := utils.RetryConfig{
		InitialDelay: 100 * time.Millisecond,
		MaxAttempts:  3,
		Multiplier:   2,
	}
	if err := utils.RetryContext(ctx, cfg, fn, entities.ErrNotFound); err != nil {
		return entities.Order{}, err
	}

	s.cache.Set(orderID, order)
	return order, nil
}

func (s *orderService) GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	return s.orders.GetOrderByNumber(ctx, orderNumber)
}

func (s *orderService) ListUserOrders(ctx context.Context, userID string, limit, offset uint64) ([]entities.Order, error) {
	if limit == 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	return s.orders.ListOrdersByUser(ctx, userID, limit, offset)
}

// WarmUpCache загружает в кэш последние count заказов.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, o := range orders {
		s.cache.Set(o.ID, o)
	}
	s.logger.Info("order cache warmed up", slog.Int("count", len(orders)))
	return nil
}

func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:4])
	return fmt.Sprintf("ORD%d%s", now.UnixMilli(), suffix)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, entities.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, entities.ErrCartInvalid):
		return "invalid_cart"
	case errors.Is(err, entities.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, entities.ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}
