package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/shopspring/decimal"
)

type User struct {
	ID    string         `db:"id"`
	Email string         `db:"email"`
	Phone sql.NullString `db:"phone"`
	Name  string         `db:"name"`
}

func UserToEntity(u User) entities.User {
	return entities.User{
		ID:    u.ID,
		Email: u.Email,
		Phone: u.Phone.String,
		Name:  u.Name,
	}
}

type Product struct {
	ID            string              `db:"id"`
	SKU           string              `db:"sku"`
	Name          string              `db:"name"`
	ImageURL      sql.NullString      `db:"image_url"`
	Price         decimal.Decimal     `db:"price"`
	SalePrice     decimal.NullDecimal `db:"sale_price"`
	StockQuantity int                 `db:"stock_quantity"`
	TotalSales    int                 `db:"total_sales"`
	IsActive      bool                `db:"is_active"`
	Version       int64               `db:"version"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		ImageURL:      p.ImageURL.String,
		Price:         p.Price,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		TotalSales:    p.TotalSales,
		IsActive:      p.IsActive,
		Version:       p.Version,
	}
}

type Cart struct {
	ID               string          `db:"id"`
	UserID           string          `db:"user_id"`
	Subtotal         decimal.Decimal `db:"subtotal"`
	Tax              decimal.Decimal `db:"tax"`
	ShippingCost     decimal.Decimal `db:"shipping_cost"`
	Discount         decimal.Decimal `db:"discount"`
	Total            decimal.Decimal `db:"total"`
	CouponCode       sql.NullString  `db:"coupon_code"`
	ShippingMethodID sql.NullString  `db:"shipping_method_id"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}

type CartItem struct {
	CartID    string          `db:"cart_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	Name      string          `db:"name"`
	ImageURL  sql.NullString  `db:"image_url"`
	SKU       sql.NullString  `db:"sku"`
	Variant   sql.NullString  `db:"variant"`
}

func CartToEntity(c Cart, items []CartItem) entities.Cart {
	cart := entities.Cart{
		ID:               c.ID,
		UserID:           c.UserID,
		Items:            make([]entities.CartItem, 0, len(items)),
		Subtotal:         c.Subtotal,
		Tax:              c.Tax,
		ShippingCost:     c.ShippingCost,
		Discount:         c.Discount,
		Total:            c.Total,
		CouponCode:       c.CouponCode.String,
		ShippingMethodID: c.ShippingMethodID.String,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	for _, it := range items {
		cart.Items = append(cart.Items, entities.CartItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Name:      it.Name,
			ImageURL:  it.ImageURL.String,
			SKU:       it.SKU.String,
			Variant:   it.Variant.String,
		})
	}
	return cart
}

type Order struct {
	ID            string          `db:"id"`
	OrderNumber   string          `db:"order_number"`
	UserID        string          `db:"user_id"`
	Status        string          `db:"status"`
	Subtotal      decimal.Decimal `db:"subtotal"`
	Tax           decimal.Decimal `db:"tax"`
	ShippingCost  decimal.Decimal `db:"shipping_cost"`
	Discount      decimal.Decimal `db:"discount"`
	Total         decimal.Decimal `db:"total"`
	CouponCode    sql.NullString  `db:"coupon_code"`
	Notes         sql.NullString  `db:"notes"`
	CancelReason  sql.NullString  `db:"cancel_reason"`
	CustomerEmail sql.NullString  `db:"customer_email"`
	CustomerPhone sql.NullString  `db:"customer_phone"`

	PaymentMethod        string          `db:"payment_method"`
	PaymentStatus        string          `db:"payment_status"`
	PaymentTransactionID sql.NullString  `db:"payment_transaction_id"`
	PaymentGateway       sql.NullString  `db:"payment_gateway"`
	PaymentAmount        decimal.Decimal `db:"payment_amount"`
	PaidAt               sql.NullTime    `db:"paid_at"`

	ShipFullName      sql.NullString `db:"ship_full_name"`
	ShipStreet        sql.NullString `db:"ship_street"`
	ShipCity          sql.NullString `db:"ship_city"`
	ShipState         sql.NullString `db:"ship_state"`
	ShipZipCode       sql.NullString `db:"ship_zip_code"`
	ShipCountry       sql.NullString `db:"ship_country"`
	ShipPhone         sql.NullString `db:"ship_phone"`
	ShippingMethod    sql.NullString `db:"shipping_method"`
	TrackingNumber    sql.NullString `db:"tracking_number"`
	Carrier           sql.NullString `db:"carrier"`
	EstimatedDelivery sql.NullTime   `db:"estimated_delivery"`
	ShippedAt         sql.NullTime   `db:"shipped_at"`

	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeliveredAt sql.NullTime `db:"delivered_at"`
	CancelledAt sql.NullTime `db:"cancelled_at"`
	Version     int64        `db:"version"`
}

type OrderItem struct {
	OrderID   string          `db:"order_id"`
	Position  int             `db:"position"`
	ProductID string          `db:"product_id"`
	Name      string          `db:"name"`
	SKU       sql.NullString  `db:"sku"`
	ImageURL  sql.NullString  `db:"image_url"`
	Variant   sql.NullString  `db:"variant"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
}

type StatusEntry struct {
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	Note      string    `db:"note"`
	CreatedAt time.Time `db:"created_at"`
}

func OrderToEntity(o Order, items []OrderItem, history []StatusEntry) entities.Order {
	order := entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		UserID:      o.UserID,
		Items:       make([]entities.OrderItem, 0, len(items)),
		Status:      entities.OrderStatus(o.Status),
		Payment: entities.Payment{
			Method:        entities.PaymentMethod(o.PaymentMethod),
			Status:        entities.PaymentStatus(o.PaymentStatus),
			TransactionID: o.PaymentTransactionID.String,
			Gateway:       o.PaymentGateway.String,
			Amount:        o.PaymentAmount,
			PaidAt:        timeFromNull(o.PaidAt),
		},
		Shipping: entities.Shipping{
			Address: entities.Address{
				FullName: o.ShipFullName.String,
				Street:   o.ShipStreet.String,
				City:     o.ShipCity.String,
				State:    o.ShipState.String,
				ZipCode:  o.ShipZipCode.String,
				Country:  o.ShipCountry.String,
				Phone:    o.ShipPhone.String,
			},
			Method:            o.ShippingMethod.String,
			TrackingNumber:    o.TrackingNumber.String,
			Carrier:           o.Carrier.String,
			Cost:              o.ShippingCost,
			EstimatedDelivery: timeFromNull(o.EstimatedDelivery),
			ShippedAt:         timeFromNull(o.ShippedAt),
		},
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		ShippingCost:  o.ShippingCost,
		Discount:      o.Discount,
		Total:         o.Total,
		CouponCode:    o.CouponCode.String,
		Notes:         o.Notes.String,
		CancelReason:  o.CancelReason.String,
		CustomerEmail: o.CustomerEmail.String,
		CustomerPhone: o.CustomerPhone.String,
		History:       make([]entities.StatusEntry, 0, len(history)),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		DeliveredAt:   timeFromNull(o.DeliveredAt),
		CancelledAt:   timeFromNull(o.CancelledAt),
		Version:       o.Version,
	}

	for _, it := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			SKU:       it.SKU.String,
			ImageURL:  it.ImageURL.String,
			Variant:   it.Variant.String,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}
	for _, h := range history {
		order.History = append(order.History, entities.StatusEntry{
			Status:    entities.OrderStatus(h.Status),
			Note:      h.Note,
			Timestamp: h.CreatedAt,
		})
	}
	return order
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timeFromNull(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
