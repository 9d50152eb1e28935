package notifier

import (
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
)

type EventType string

const (
	EventOrderConfirmation EventType = "order_confirmation"
	EventOrderStatusUpdate EventType = "order_status_update"
)

// Event сообщение для сервиса рассылки писем.
type Event struct {
	Type           EventType `json:"type"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	UserID         string    `json:"user_id"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Total          string    `json:"total"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func newEvent(t EventType, order entities.Order, previous entities.OrderStatus, now time.Time) Event {
	return Event{
		Type:           t,
		OrderID:        order.ID,
		OrderNumber:    order.OrderNumber,
		UserID:         order.UserID,
		Email:          order.CustomerEmail,
		Phone:          order.CustomerPhone,
		Status:         string(order.Status),
		StatusLabel:    order.Status.Label(),
		PreviousStatus: string(previous),
		Total:          order.Total.StringFixed(2),
		OccurredAt:     now,
	}
}
