package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/config"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSender публикует уведомления в топик, который читает сервис рассылки.
type KafkaSender struct {
	writer messageWriter
	now    func() time.Time
}

func NewKafkaSender(cfg config.Kafka) *KafkaSender {
	return &KafkaSender{
		writer: &kafka.Writer{
			Addr:  kafka.TCP(cfg.Brokers...),
			Topic: cfg.NotificationTopic,
			// Сообщения одного заказа попадают в одну партицию и не перемешиваются.
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			AllowAutoTopicCreation: true,
		},
		now: time.Now,
	}
}

func (s *KafkaSender) SendOrderConfirmation(ctx context.Context, order entities.Order) error {
	return s.publish(ctx, newEvent(EventOrderConfirmation, order, "", s.now()))
}

func (s *KafkaSender) SendOrderStatusUpdate(ctx context.Context, order entities.Order, previous entities.OrderStatus) error {
	return s.publish(ctx, newEvent(EventOrderStatusUpdate, order, previous, s.now()))
}

func (s *KafkaSender) publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", event.Type, err)
	}
	return nil
}

func (s *KafkaSender) Close() error {
	return s.writer.Close()
}
