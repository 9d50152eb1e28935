package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"
)

type PaymentGateway interface {
	Charge(ctx context.Context, req entities.ChargeRequest) (entities.ChargeResult, error)
}

type paymentService struct {
	logger   *slog.Logger
	orders   OrderRepo
	gateway  PaymentGateway
	notifier Notifier
	updater  *orderUpdater
	now      func() time.Time
}

func NewPaymentService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	cache OrderCache,
	gateway PaymentGateway,
	notifier Notifier,
	retry utils.RetryConfig,
) *paymentService {
	return &paymentService{
		logger:   logger.With(slog.String("service", "payment")),
		orders:   orders,
		gateway:  gateway,
		notifier: notifier,
		updater:  newOrderUpdater(txManager, orders, cache, retry),
		now:      time.Now,
	}
}

// RecordPayment сохраняет статус оплаты. Оплаченный заказ в PENDING
// автоматически становится CONFIRMED.
func (s *paymentService) RecordPayment(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID string) (entities.Order, error) {
	return s.record(ctx, orderID, status, transactionID, "")
}

// ProcessPayment списывает оплату через шлюз и сохраняет результат.
// Отказ шлюза не считается ошибкой: заказ вернётся с платежом в FAILED.
func (s *paymentService) ProcessPayment(ctx context.Context, orderID string) (entities.Order, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.Payment.Status == entities.PaymentPaid {
		return entities.Order{}, entities.ErrAlreadyPaid
	}
	if order.Status == entities.StatusCancelled {
		return entities.Order{}, fmt.Errorf("%w: order is cancelled", entities.ErrBadRequest)
	}

	res, err := s.gateway.Charge(ctx, entities.ChargeRequest{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Method:      order.Payment.Method,
		Amount:      order.Total,
	})
	if err != nil {
		return entities.Order{}, fmt.Errorf("payment gateway: %w", err)
	}

	status := entities.PaymentPaid
	if !res.Success {
		status = entities.PaymentFailed
		s.logger.Warn("payment declined",
			slog.String("order_id", order.ID), slog.String("message", res.Message))
	}
	return s.record(ctx, orderID, status, res.TransactionID, res.Gateway)
}

func (s *paymentService) record(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID, gateway string) (entities.Order, error) {
	if _, err := entities.ParsePaymentStatus(string(status)); err != nil {
		return entities.Order{}, err
	}

	var previous entities.OrderStatus
	order, err := s.updater.update(ctx, orderID, func(_ context.Context, order entities.Order) (entities.Order, error) {
		previous = order.Status
		next := order.ApplyPayment(status, transactionID, s.now())
		if gateway != "" {
			next.Payment.Gateway = gateway
		}
		return next, nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	paymentsRecorded.WithLabelValues(string(status)).Inc()
	s.logger.Info("payment recorded",
		slog.String("order_id", order.ID),
		slog.String("status", string(status)),
		slog.String("transaction_id", order.Payment.TransactionID),
	)

	if order.Status != previous {
		orderTransitions.WithLabelValues(string(order.Status)).Inc()
		s.notifier.NotifyStatusUpdate(order, previous)
	}
	return order, nil
}
