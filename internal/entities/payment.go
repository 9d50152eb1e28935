package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID string
	Gateway       string
	Amount        decimal.Decimal
	PaidAt        *time.Time
}

type ChargeRequest struct {
	OrderID     string
	OrderNumber string
	Method      PaymentMethod
	Amount      decimal.Decimal
}

type ChargeResult struct {
	Success       bool
	TransactionID string
	Gateway       string
	Message       string
}
