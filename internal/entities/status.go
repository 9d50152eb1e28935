package entities

import (
	"fmt"
	"strings"
)

type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusProcessing     OrderStatus = "PROCESSING"
	StatusShipped        OrderStatus = "SHIPPED"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

var statusLabels = map[OrderStatus]string{
	StatusPending:        "Pending",
	StatusConfirmed:      "Confirmed",
	StatusProcessing:     "Processing",
	StatusShipped:        "Shipped",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
	StatusCancelled:      "Cancelled",
}

// Label возвращает человекочитаемое название статуса.
func (s OrderStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s OrderStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) Cancellable() bool {
	return CanTransition(s, StatusCancelled)
}

func ParseOrderStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

type transition struct {
	from OrderStatus
	to   OrderStatus
}

// Допустимые переходы. Всё, чего нет в таблице, запрещено.
var transitions = map[transition]struct{}{
	{StatusPending, StatusConfirmed}:        {},
	{StatusPending, StatusCancelled}:        {},
	{StatusConfirmed, StatusProcessing}:     {},
	{StatusConfirmed, StatusCancelled}:      {},
	{StatusProcessing, StatusShipped}:       {},
	{StatusProcessing, StatusCancelled}:     {},
	{StatusShipped, StatusOutForDelivery}:   {},
	{StatusShipped, StatusDelivered}:        {},
	{StatusOutForDelivery, StatusDelivered}: {},
}

func CanTransition(from, to OrderStatus) bool {
	_, ok := transitions[transition{from, to}]
	return ok
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	s := PaymentStatus(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return s, nil
	}
	return "", fmt.Errorf("%w: payment status %q", ErrInvalidStatus, raw)
}

type PaymentMethod string

const (
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
	MethodPayPal     PaymentMethod = "PAYPAL"
	MethodStripe     PaymentMethod = "STRIPE"
	MethodCOD        PaymentMethod = "COD"
)

func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
	switch m {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodStripe, MethodCOD:
		return m, nil
	}
	return "", fmt.Errorf("%w: unknown payment method %q", ErrBadRequest, raw)
}
