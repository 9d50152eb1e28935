package entities

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ProductID string
	Quantity  int
	Price     decimal.Decimal
	Name      string
	ImageURL  string
	SKU       string
	Variant   string
}

func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart агрегат корзины. Любая мутация синхронно пересчитывает Subtotal и Total.
type Cart struct {
	ID               string
	UserID           string
	Items            []CartItem
	Subtotal         decimal.Decimal
	Tax              decimal.Decimal
	ShippingCost     decimal.Decimal
	Discount         decimal.Decimal
	Total            decimal.Decimal
	CouponCode       string
	ShippingMethodID string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewCart(id, userID string, now time.Time) Cart {
	return Cart{
		ID:        id,
		UserID:    userID,
		Items:     []CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c Cart) Clone() Cart {
	c.Items = slices.Clone(c.Items)
	return c
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c Cart) TotalItems() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) QuantityOf(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// AddOrMergeItem добавляет позицию или суммирует количество с уже существующей.
// Снимок цены и описания товара обновляется на переданный.
func (c *Cart) AddOrMergeItem(item CartItem) error {
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, item.Quantity)
	}

	if i := c.indexOf(item.ProductID); i >= 0 {
		item.Quantity += c.Items[i].Quantity
		c.Items[i] = item
	} else {
		c.Items = append(c.Items, item)
	}

	c.recalc()
	return nil
}

// SetQuantity выставляет количество позиции. Значение <= 0 удаляет позицию.
func (c *Cart) SetQuantity(productID string, qty int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCartItemNotFound, productID)
	}

	if qty <= 0 {
		c.Items = slices.Delete(c.Items, i, i+1)
	} else {
		c.Items[i].Quantity = qty
	}

	c.recalc()
	return nil
}

func (c *Cart) RemoveItem(productID string) error {
	i := c.indexOf(productID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrCartItemNotFound, productID)
	}
	c.Items = slices.Delete(c.Items, i, i+1)
	c.recalc()
	return nil
}

// Clear сбрасывает позиции и все ценовые поля корзины.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.CouponCode = ""
	c.ShippingMethodID = ""
	c.Discount = decimal.Zero
	c.Tax = decimal.Zero
	c.ShippingCost = decimal.Zero
	c.recalc()
}

func (c *Cart) ApplyCoupon(code string, discount decimal.Decimal) error {
	if discount.IsNegative() {
		return fmt.Errorf("%w: negative discount", ErrInvalidAmount)
	}
	c.CouponCode = code
	c.Discount = discount
	c.recalc()
	return nil
}

func (c *Cart) RemoveCoupon() {
	c.CouponCode = ""
	c.Discount = decimal.Zero
	c.recalc()
}

func (c *Cart) SetShippingCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return fmt.Errorf("%w: negative shipping cost", ErrInvalidAmount)
	}
	c.ShippingCost = cost
	c.recalc()
	return nil
}

func (c *Cart) SetShippingMethod(methodID string, cost decimal.Decimal) error {
	if err := c.SetShippingCost(cost); err != nil {
		return err
	}
	c.ShippingMethodID = methodID
	return nil
}

func (c *Cart) SetTax(tax decimal.Decimal) error {
	if tax.IsNegative() {
		return fmt.Errorf("%w: negative tax", ErrInvalidAmount)
	}
	c.Tax = tax
	c.recalc()
	return nil
}

func (c *Cart) recalc() {
	subtotal := decimal.Zero
	for _, it := range c.Items {
		subtotal = subtotal.Add(it.LineTotal())
	}
	c.Subtotal = subtotal

	total := subtotal.Add(c.Tax).Add(c.ShippingCost).Sub(c.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	c.Total = total
}

func (c Cart) indexOf(productID string) int {
	return slices.IndexFunc(c.Items, func(it CartItem) bool {
		return it.ProductID == productID
	})
}
