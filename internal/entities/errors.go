package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Категории ошибок, по которым хендлеры выбирают HTTP статус.
var (
	ErrNotFound          = errors.New("not found")
	ErrBadRequest        = errors.New("bad request")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrConflict          = errors.New("conflict")
)

var (
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
	ErrCartNotFound     = fmt.Errorf("cart %w", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item %w", ErrNotFound)
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)

	// ErrTxAborted база прервала транзакцию (deadlock, serialization failure).
	// Повторять можно только транзакцию целиком, отдельный запрос в ней уже не выполнится.
	ErrTxAborted = fmt.Errorf("transaction aborted: %w", ErrConflict)

	ErrInvalidTransition   = fmt.Errorf("invalid status transition: %w", ErrBadRequest)
	ErrOrderNotCancellable = fmt.Errorf("order cannot be cancelled: %w", ErrBadRequest)
	ErrEmptyCart           = fmt.Errorf("cart is empty: %w", ErrBadRequest)
	ErrCartInvalid         = fmt.Errorf("cart contains unavailable items: %w", ErrBadRequest)
	ErrInvalidCoupon       = fmt.Errorf("invalid coupon code: %w", ErrBadRequest)
	ErrInvalidQuantity     = fmt.Errorf("invalid quantity: %w", ErrBadRequest)
	ErrInvalidAmount       = fmt.Errorf("invalid amount: %w", ErrBadRequest)
	ErrInvalidStatus       = fmt.Errorf("invalid status: %w", ErrBadRequest)
	ErrAlreadyPaid         = fmt.Errorf("order is already paid: %w", ErrBadRequest)
	ErrBulkRejected        = fmt.Errorf("bulk operation rejected: %w", ErrBadRequest)
)

// InvalidCartError перечисляет товары корзины, которые нельзя заказать.
type InvalidCartError struct {
	ProductIDs []string
}

func (e *InvalidCartError) Error() string {
	return fmt.Sprintf("%s: %s", ErrCartInvalid.Error(), strings.Join(e.ProductIDs, ", "))
}

func (e *InvalidCartError) Unwrap() error {
	return ErrCartInvalid
}
