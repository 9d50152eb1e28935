package entities

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type OrderItem struct {
	ProductID string
	Name      string
	SKU       string
	ImageURL  string
	Variant   string
	Quantity  int
	Price     decimal.Decimal
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Address struct {
	FullName string
	Street   string
	City     string
	State    string
	ZipCode  string
	Country  string
	Phone    string
}

type Shipping struct {
	Address           Address
	Method            string
	TrackingNumber    string
	Carrier           string
	Cost              decimal.Decimal
	EstimatedDelivery *time.Time
	ShippedAt         *time.Time
}

type StatusEntry struct {
	Status    OrderStatus
	Note      string
	Timestamp time.Time
}

type Order struct {
	ID            string
	OrderNumber   string
	UserID        string
	Items         []OrderItem
	Status        OrderStatus
	Payment       Payment
	Shipping      Shipping
	Subtotal      decimal.Decimal
	Tax           decimal.Decimal
	ShippingCost  decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	CouponCode    string
	Notes         string
	CancelReason  string
	CustomerEmail string
	CustomerPhone string
	History       []StatusEntry
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeliveredAt   *time.Time
	CancelledAt   *time.Time
	Version       int64
}

// Checkout данные, которые покупатель передаёт при оформлении заказа.
type Checkout struct {
	Address           Address
	ShippingMethod    string
	PaymentMethod     PaymentMethod
	Notes             string
	EstimatedDelivery *time.Time
}

const (
	noteOrderCreated     = "Order created"
	notePaymentConfirmed = "Payment received, order confirmed"
)

// NewOrderFromCart делает снимок корзины. Дальнейшие изменения корзины на заказ не влияют.
func NewOrderFromCart(id, number string, cart Cart, customer User, co Checkout, now time.Time) Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			ImageURL:  it.ImageURL,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	return Order{
		ID:          id,
		OrderNumber: number,
		UserID:      cart.UserID,
		Items:       items,
		Status:      StatusPending,
		Payment: Payment{
			Method: co.PaymentMethod,
			Status: PaymentPending,
			Amount: cart.Total,
		},
		Shipping: Shipping{
			Address:           co.Address,
			Method:            co.ShippingMethod,
			Cost:              cart.ShippingCost,
			EstimatedDelivery: co.EstimatedDelivery,
		},
		Subtotal:      cart.Subtotal,
		Tax:           cart.Tax,
		ShippingCost:  cart.ShippingCost,
		Discount:      cart.Discount,
		Total:         cart.Total,
		CouponCode:    cart.CouponCode,
		Notes:         co.Notes,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		History:       []StatusEntry{{Status: StatusPending, Note: noteOrderCreated, Timestamp: now}},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Transition возвращает копию заказа в статусе to. Исходный заказ не меняется.
func (o Order) Transition(to OrderStatus, note string, now time.Time) (Order, error) {
	if !CanTransition(o.Status, to) {
		return Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	if note == "" {
		note = "Status changed to " + to.Label()
	}

	next := o.withStatus(to, note, now)

	switch to {
	case StatusShipped:
		if next.Shipping.ShippedAt == nil {
			next.Shipping.ShippedAt = timePtr(next.UpdatedAt)
		}
	case StatusDelivered:
		next.DeliveredAt = timePtr(next.UpdatedAt)
	case StatusCancelled:
		next.CancelledAt = timePtr(next.UpdatedAt)
	}
	return next, nil
}

// ApplyPayment обновляет платёж. Оплата заказа в PENDING подтверждает его в обход таблицы переходов.
func (o Order) ApplyPayment(status PaymentStatus, transactionID string, now time.Time) Order {
	next := o
	next.Payment.Status = status
	if transactionID != "" {
		next.Payment.TransactionID = transactionID
	}
	next.UpdatedAt = now

	if status != PaymentPaid {
		return next
	}

	next.Payment.PaidAt = timePtr(now)
	if o.Status == StatusPending {
		next = next.withStatus(StatusConfirmed, notePaymentConfirmed, now)
	}
	return next
}

func (o Order) LastStatusEntry() (StatusEntry, bool) {
	if len(o.History) == 0 {
		return StatusEntry{}, false
	}
	return o.History[len(o.History)-1], true
}

func (o Order) withStatus(to OrderStatus, note string, now time.Time) Order {
	// Время в истории не убывает, даже если часы ушли назад.
	if last, ok := o.LastStatusEntry(); ok && now.Before(last.Timestamp) {
		now = last.Timestamp
	}

	next := o
	next.Status = to
	next.UpdatedAt = now
	next.History = append(slices.Clone(o.History), StatusEntry{Status: to, Note: note, Timestamp: now})
	return next
}

func timePtr(t time.Time) *time.Time {
	return &t
}
