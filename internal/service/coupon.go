package service

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/shopspring/decimal"
)

// DefaultCoupons процентные скидки от суммы позиций корзины.
var DefaultCoupons = map[string]decimal.Decimal{
	"SAVE10":     decimal.NewFromFloat(0.10),
	"SAVE20":     decimal.NewFromFloat(0.20),
	"FIRSTORDER": decimal.NewFromFloat(0.15),
}

type staticCoupons struct {
	rates map[string]decimal.Decimal
}

func NewStaticCoupons(rates map[string]decimal.Decimal) *staticCoupons {
	normalized := make(map[string]decimal.Decimal, len(rates))
	for code, rate := range rates {
		normalized[NormalizeCoupon(code)] = rate
	}
	return &staticCoupons{rates: normalized}
}

func NormalizeCoupon(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve считает скидку по текущему состоянию корзины. Неизвестный код это ошибка,
// а не нулевая скидка.
func (c *staticCoupons) Resolve(code string, cart entities.Cart) (decimal.Decimal, error) {
	code = NormalizeCoupon(code)
	if code == "" {
		return decimal.Zero, fmt.Errorf("%w: empty code", entities.ErrInvalidCoupon)
	}

	rate, ok := c.rates[code]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", entities.ErrInvalidCoupon, code)
	}

	discount := cart.Subtotal.Mul(rate).Round(2)
	if discount.GreaterThan(cart.Subtotal) {
		discount = cart.Subtotal
	}
	return discount, nil
}
