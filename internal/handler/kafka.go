package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentRecorder применяет результат оплаты к заказу.
type PaymentRecorder interface {
	RecordPayment(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID string) (entities.Order, error)
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentRecorder
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, payments PaymentRecorder) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.PaymentTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Balancer:               &kafka.LeastBytes{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		validate: validator.New(),
		payments: payments,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		// Сообщение, которое не удалось ни применить, ни отправить в DLQ, не коммитим
		if err := h.process(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			continue
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) error {
	paymentsInProgress.Inc()
	defer paymentsInProgress.Dec()
	start := time.Now()

	// RecordPayment сам повторяет запись при конфликте версий
	if err := h.handlePaymentResult(ctx, m); err != nil {
		paymentsFailed.Inc()
		h.logger.Error("failed to handle payment result", slog.Any("error", err), slog.Int64("offset", m.Offset))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			return err
		}
		paymentsDLQ.Inc()
		return nil
	}

	paymentsProcessed.Inc()
	paymentProcessingDuration.Observe(time.Since(start).Seconds())
	return nil
}

func (h *kafkaHandler) handlePaymentResult(ctx context.Context, m kafka.Message) error {
	var res PaymentResult
	if err := json.Unmarshal(m.Value, &res); err != nil {
		return fmt.Errorf("failed to unmarshal payment result: %w", err)
	}

	if err := h.validate.Struct(res); err != nil {
		return fmt.Errorf("invalid payment result: %w", err)
	}

	status, err := entities.ParsePaymentStatus(res.Status)
	if err != nil {
		return err
	}

	order, err := h.payments.RecordPayment(ctx, res.OrderID, status, res.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to record payment for order %s: %w", res.OrderID, err)
	}

	h.logger.Debug("payment result applied",
		slog.String("order_id", order.ID),
		slog.String("payment_status", string(order.Payment.Status)),
		slog.String("order_status", string(order.Status)),
	)
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dead := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dead)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
