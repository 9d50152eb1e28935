package handler

import (
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/service"

	"github.com/shopspring/decimal"
)

// CartItem позиция корзины
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price" example:"10.00"`
	LineTotal string `json:"line_total" example:"20.00"`
}

// Cart корзина пользователя
type Cart struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	Items            []CartItem `json:"items"`
	TotalItems       int        `json:"total_items"`
	Subtotal         string     `json:"subtotal" example:"25.00"`
	Tax              string     `json:"tax" example:"0.00"`
	ShippingCost     string     `json:"shipping_cost" example:"3.00"`
	Discount         string     `json:"discount" example:"0.00"`
	Total            string     `json:"total" example:"28.00"`
	CouponCode       string     `json:"coupon_code,omitempty"`
	ShippingMethodID string     `json:"shipping_method_id,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// LineFailure позиция, которую не удалось применить в пакетной операции
type LineFailure struct {
	ProductID string `json:"product_id"`
	Error     string `json:"error"`
}

// CartMutationResponse корзина после пакетной операции
type CartMutationResponse struct {
	Cart    Cart          `json:"cart"`
	Failed  []LineFailure `json:"failed,omitempty"`
	Skipped []string      `json:"skipped,omitempty"`
}

// InvalidItemsResponse товары корзины, которые нельзя заказать
type InvalidItemsResponse struct {
	ProductIDs []string `json:"product_ids"`
}

// AddLine позиция для добавления в корзину
type AddLine struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
	Variant   string `json:"variant,omitempty"`
}

// UpdateLine новое количество позиции, 0 удаляет её
type UpdateLine struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type AddItemsRequest struct {
	Items        []AddLine `json:"items" validate:"required,min=1,dive"`
	AllOrNothing bool      `json:"all_or_nothing"`
}

type UpdateItemsRequest struct {
	Items        []UpdateLine `json:"items" validate:"required,min=1,dive"`
	AllOrNothing bool         `json:"all_or_nothing"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type ShippingRequest struct {
	MethodID string          `json:"method_id"`
	Cost     decimal.Decimal `json:"cost" swaggertype:"string" example:"3.00"`
}

type TaxRequest struct {
	Tax decimal.Decimal `json:"tax" swaggertype:"string" example:"1.50"`
}

type MergeCartRequest struct {
	Items []AddLine `json:"items" validate:"required,dive"`
}

// Address адрес доставки
type Address struct {
	FullName string `json:"full_name" validate:"required"`
	Street   string `json:"street" validate:"required"`
	City     string `json:"city" validate:"required"`
	State    string `json:"state,omitempty"`
	ZipCode  string `json:"zip_code" validate:"required"`
	Country  string `json:"country" validate:"required"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,e164"`
}

type CheckoutRequest struct {
	Address           Address    `json:"shipping_address" validate:"required"`
	ShippingMethod    string     `json:"shipping_method,omitempty"`
	PaymentMethod     string     `json:"payment_method" validate:"required,oneof=CREDIT_CARD DEBIT_CARD PAYPAL STRIPE COD"`
	Notes             string     `json:"notes,omitempty" validate:"max=1000"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note,omitempty" validate:"max=500"`
}

type ShipRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"required"`
	Carrier        string `json:"carrier,omitempty"`
}

type CancelRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}

type PaymentRequest struct {
	Status        string `json:"status" validate:"required"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price" example:"10.00"`
	LineTotal string `json:"line_total" example:"20.00"`
}

// Payment информация об оплате
type Payment struct {
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transaction_id,omitempty"`
	Gateway       string     `json:"gateway,omitempty"`
	Amount        string     `json:"amount" example:"28.00"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
}

// Shipping информация о доставке
type Shipping struct {
	Address           Address    `json:"address"`
	Method            string     `json:"method,omitempty"`
	TrackingNumber    string     `json:"tracking_number,omitempty"`
	Carrier           string     `json:"carrier,omitempty"`
	Cost              string     `json:"cost" example:"3.00"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	ShippedAt         *time.Time `json:"shipped_at,omitempty"`
}

// StatusEntry запись истории статусов
type StatusEntry struct {
	Status    string    `json:"status"`
	Note      string    `json:"note"`
	Timestamp time.Time `json:"timestamp"`
}

// Order представляет заказ
type Order struct {
	ID           string        `json:"id"`
	OrderNumber  string        `json:"order_number"`
	UserID       string        `json:"user_id"`
	Status       string        `json:"status"`
	StatusLabel  string        `json:"status_label"`
	Items        []OrderItem   `json:"items"`
	Payment      Payment       `json:"payment"`
	Shipping     Shipping      `json:"shipping"`
	Subtotal     string        `json:"subtotal" example:"25.00"`
	Tax          string        `json:"tax" example:"0.00"`
	ShippingCost string        `json:"shipping_cost" example:"3.00"`
	Discount     string        `json:"discount" example:"0.00"`
	Total        string        `json:"total" example:"28.00"`
	CouponCode   string        `json:"coupon_code,omitempty"`
	Notes        string        `json:"notes,omitempty"`
	CancelReason string        `json:"cancel_reason,omitempty"`
	History      []StatusEntry `json:"status_history"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeliveredAt  *time.Time    `json:"delivered_at,omitempty"`
	CancelledAt  *time.Time    `json:"cancelled_at,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func CartEntityToJSON(c entities.Cart) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			ImageURL:  it.ImageURL,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			LineTotal: money(it.LineTotal()),
		})
	}

	return Cart{
		ID:               c.ID,
		UserID:           c.UserID,
		Items:            items,
		TotalItems:       c.TotalItems(),
		Subtotal:         money(c.Subtotal),
		Tax:              money(c.Tax),
		ShippingCost:     money(c.ShippingCost),
		Discount:         money(c.Discount),
		Total:            money(c.Total),
		CouponCode:       c.CouponCode,
		ShippingMethodID: c.ShippingMethodID,
		UpdatedAt:        c.UpdatedAt,
	}
}

func LineErrorsToJSON(errs []service.LineError) []LineFailure {
	if len(errs) == 0 {
		return nil
	}
	res := make([]LineFailure, 0, len(errs))
	for _, e := range errs {
		res = append(res, LineFailure{ProductID: e.ProductID, Error: e.Err.Error()})
	}
	return res
}

func AddLinesToService(lines []AddLine) []service.CartLine {
	res := make([]service.CartLine, 0, len(lines))
	for _, l := range lines {
		res = append(res, service.CartLine{ProductID: l.ProductID, Quantity: l.Quantity, Variant: l.Variant})
	}
	return res
}

func UpdateLinesToService(lines []UpdateLine) []service.CartLine {
	res := make([]service.CartLine, 0, len(lines))
	for _, l := range lines {
		res = append(res, service.CartLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return res
}

func AddressJSONToEntity(a Address) entities.Address {
	return entities.Address{
		FullName: a.FullName,
		Street:   a.Street,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
		Phone:    a.Phone,
	}
}

func AddressEntityToJSON(a entities.Address) Address {
	return Address{
		FullName: a.FullName,
		Street:   a.Street,
		City:     a.City,
		State:    a.State,
		ZipCode:  a.ZipCode,
		Country:  a.Country,
		Phone:    a.Phone,
	}
}

func CheckoutJSONToEntity(c CheckoutRequest) (entities.Checkout, error) {
	method, err := entities.ParsePaymentMethod(c.PaymentMethod)
	if err != nil {
		return entities.Checkout{}, err
	}
	return entities.Checkout{
		Address:           AddressJSONToEntity(c.Address),
		ShippingMethod:    c.ShippingMethod,
		PaymentMethod:     method,
		Notes:             c.Notes,
		EstimatedDelivery: c.EstimatedDelivery,
	}, nil
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU,
			ImageURL:  it.ImageURL,
			Variant:   it.Variant,
			Quantity:  it.Quantity,
			Price:     money(it.Price),
			LineTotal: money(it.LineTotal()),
		})
	}

	history := make([]StatusEntry, 0, len(o.History))
	for _, h := range o.History {
		history = append(history, StatusEntry{Status: string(h.Status), Note: h.Note, Timestamp: h.Timestamp})
	}

	return Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		Items:       items,
		Payment: Payment{
			Method:        string(o.Payment.Method),
			Status:        string(o.Payment.Status),
			TransactionID: o.Payment.TransactionID,
			Gateway:       o.Payment.Gateway,
			Amount:        money(o.Payment.Amount),
			PaidAt:        o.Payment.PaidAt,
		},
		Shipping: Shipping{
			Address:           AddressEntityToJSON(o.Shipping.Address),
			Method:            o.Shipping.Method,
			TrackingNumber:    o.Shipping.TrackingNumber,
			Carrier:           o.Shipping.Carrier,
			Cost:              money(o.Shipping.Cost),
			EstimatedDelivery: o.Shipping.EstimatedDelivery,
			ShippedAt:         o.Shipping.ShippedAt,
		},
		Subtotal:     money(o.Subtotal),
		Tax:          money(o.Tax),
		ShippingCost: money(o.ShippingCost),
		Discount:     money(o.Discount),
		Total:        money(o.Total),
		CouponCode:   o.CouponCode,
		Notes:        o.Notes,
		CancelReason: o.CancelReason,
		History:      history,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
		DeliveredAt:  o.DeliveredAt,
		CancelledAt:  o.CancelledAt,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

// PaymentResult сообщение платёжного шлюза о результате оплаты
type PaymentResult struct {
	OrderID       string `json:"order_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=PENDING PAID FAILED REFUNDED"`
	TransactionID string `json:"transaction_id" validate:"required"`
}
