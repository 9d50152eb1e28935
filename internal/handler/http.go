package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (entities.Cart, error)
	AddItem(ctx context.Context, userID string, line service.CartLine) (entities.Cart, error)
	AddItems(ctx context.Context, userID string, lines []service.CartLine, allOrNothing bool) (entities.Cart, []service.LineError, error)
	UpdateQuantity(ctx context.Context, userID string, line service.CartLine) (entities.Cart, error)
	UpdateItems(ctx context.Context, userID string, lines []service.CartLine, allOrNothing bool) (entities.Cart, []service.LineError, error)
	RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error)
	Clear(ctx context.Context, userID string) (entities.Cart, error)
	ApplyCoupon(ctx context.Context, userID, code string) (entities.Cart, error)
	RemoveCoupon(ctx context.Context, userID string) (entities.Cart, error)
	SetShippingMethod(ctx context.Context, userID, methodID string, cost decimal.Decimal) (entities.Cart, error)
	SetTax(ctx context.Context, userID string, tax decimal.Decimal) (entities.Cart, error)
	InvalidItems(ctx context.Context, userID string) ([]string, error)
	RemoveInvalidItems(ctx context.Context, userID string) (entities.Cart, []string, error)
	MergeGuestCart(ctx context.Context, userID string, guest []service.CartLine) (entities.Cart, []string, error)
}

type OrderService interface {
	CreateOrderFromCart(ctx context.Context, userID string, checkout entities.Checkout) (entities.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	ListUserOrders(ctx context.Context, userID string, limit, offset uint64) ([]entities.Order, error)
	TransitionStatus(ctx context.Context, orderID string, to entities.OrderStatus, note string) (entities.Order, error)
	ShipOrder(ctx context.Context, orderID, trackingNumber, carrier string) (entities.Order, error)
	CancelOrder(ctx context.Context, orderID, reason string) (entities.Order, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID string) (entities.Order, error)
	ProcessPayment(ctx context.Context, orderID string) (entities.Order, error)
}

// BulkErrorResponse пакетная операция отклонена целиком
type BulkErrorResponse struct {
	Message string        `json:"message"`
	Failed  []LineFailure `json:"failed"`
}

type httpBase struct {
	logger   *slog.Logger
	validate *validator.Validate
}

func newHTTPBase(logger *slog.Logger, name string) httpBase {
	return httpBase{
		logger:   logger.With(slog.String("handler", name)),
		validate: validator.New(),
	}
}

// pathParam достаёт параметр пути и проверяет его по правилу validator.
func (h httpBase) pathParam(w http.ResponseWriter, r *http.Request, name, rule string) (string, bool) {
	value := chi.URLParam(r, name)
	if err := h.validate.Var(value, rule); err != nil {
		utils.WriteValidationError(w, err)
		return "", false
	}
	return value, true
}

func (h httpBase) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeBody(r, v); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := h.validate.Struct(v); err != nil {
		utils.WriteValidationError(w, err)
		return false
	}
	return true
}

// writeError выбирает HTTP статус по категории ошибки.
func (h httpBase) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var invalid *entities.InvalidCartError
	switch {
	case errors.As(err, &invalid):
		utils.WriteItemsError(w, entities.ErrCartInvalid.Error(), invalid.ProductIDs, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		utils.WriteError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, entities.ErrInsufficientStock), errors.Is(err, entities.ErrConflict):
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrBadRequest):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err), slog.String("path", r.URL.Path))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
