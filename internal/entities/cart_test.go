package entities_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(id string, qty int, price string) entities.CartItem {
	return entities.CartItem{ProductID: id, Quantity: qty, Price: dec(price), Name: "product " + id}
}

func assertCartTotals(t *testing.T, c entities.Cart) {
	t.Helper()

	subtotal := decimal.Zero
	for _, it := range c.Items {
		assert.Positive(t, it.Quantity)
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	assert.True(t, subtotal.Equal(c.Subtotal), "subtotal %s != %s", c.Subtotal, subtotal)

	total := c.Subtotal.Add(c.Tax).Add(c.ShippingCost).Sub(c.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	assert.True(t, total.Equal(c.Total), "total %s != %s", c.Total, total)
}

func TestCart_AddOrMergeItem(t *testing.T) {
	c := entities.NewCart("cart-1", "user-1", time.Now())

	require.NoError(t, c.AddOrMergeItem(item("p1", 2, "10.00")))
	require.NoError(t, c.AddOrMergeItem(item("p1", 3, "10.00")))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.True(t, dec("50.00").Equal(c.Subtotal))
	assertCartTotals(t, c)

	err := c.AddOrMergeItem(item("p2", 0, "1.00"))
	assert.ErrorIs(t, err, entities.ErrInvalidQuantity)
	assert.ErrorIs(t, err, entities.ErrBadRequest)
	assert.Len(t, c.Items, 1)
}

func TestCart_SetQuantity(t *testing.T) {
	testCases := []struct {
		name      string
		productID string
		qty       int
		wantErr   error
		wantItems int
		wantTotal string
	}{
		{name: "update", productID: "p1", qty: 4, wantItems: 2, wantTotal: "45.00"},
		{name: "zero removes", productID: "p1", qty: 0, wantItems: 1, wantTotal: "5.00"},
		{name: "negative removes", productID: "p2", qty: -1, wantItems: 1, wantTotal: "20.00"},
		{name: "missing item", productID: "p3", qty: 1, wantErr: entities.ErrCartItemNotFound, wantItems: 2, wantTotal: "25.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := entities.NewCart("cart-1", "user-1", time.Now())
			require.NoError(t, c.AddOrMergeItem(item("p1", 2, "10.00")))
			require.NoError(t, c.AddOrMergeItem(item("p2", 1, "5.00")))

			err := c.SetQuantity(tc.productID, tc.qty)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}

			assert.Len(t, c.Items, tc.wantItems)
			assert.True(t, dec(tc.wantTotal).Equal(c.Total), "got total %s", c.Total)
			assertCartTotals(t, c)
		})
	}
}

func TestCart_TotalNeverNegative(t *testing.T) {
	c := entities.NewCart("cart-1", "user-1", time.Now())
	require.NoError(t, c.AddOrMergeItem(item("p1", 1, "5.00")))
	require.NoError(t, c.ApplyCoupon("HUGE", dec("50.00")))

	assert.True(t, c.Total.IsZero())
	assertCartTotals(t, c)

	c.RemoveCoupon()
	assert.True(t, dec("5.00").Equal(c.Total))
	assert.Empty(t, c.CouponCode)
}

func TestCart_Clear(t *testing.T) {
	c := entities.NewCart("cart-1", "user-1", time.Now())
	require.NoError(t, c.AddOrMergeItem(item("p1", 2, "10.00")))
	require.NoError(t, c.SetTax(dec("2.00")))
	require.NoError(t, c.SetShippingMethod("express", dec("7.50")))
	require.NoError(t, c.ApplyCoupon("SAVE10", dec("2.00")))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Empty(t, c.CouponCode)
	assert.Empty(t, c.ShippingMethodID)
	assert.True(t, c.Total.IsZero())
	assertCartTotals(t, c)
}

func TestCart_RejectsNegativeAmounts(t *testing.T) {
	c := entities.NewCart("cart-1", "user-1", time.Now())

	assert.ErrorIs(t, c.SetTax(dec("-1")), entities.ErrInvalidAmount)
	assert.ErrorIs(t, c.SetShippingCost(dec("-1")), entities.ErrInvalidAmount)
	assert.ErrorIs(t, c.ApplyCoupon("X", dec("-1")), entities.ErrInvalidAmount)
	assert.True(t, c.Total.IsZero())
}

func TestCart_TotalsUnderRandomMutations(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	ids := []string{"p1", "p2", "p3", "p4"}
	prices := []string{"0.99", "10.00", "24.50", "3.33"}

	c := entities.NewCart("cart-1", "user-1", time.Now())
	for range 500 {
		i := rnd.Intn(len(ids))
		switch rnd.Intn(7) {
		case 0, 1:
			_ = c.AddOrMergeItem(item(ids[i], rnd.Intn(5)+1, prices[i]))
		case 2:
			_ = c.SetQuantity(ids[i], rnd.Intn(6)-1)
		case 3:
			_ = c.RemoveItem(ids[i])
		case 4:
			_ = c.ApplyCoupon("SAVE", decimal.NewFromInt(int64(rnd.Intn(100))))
		case 5:
			_ = c.SetTax(decimal.NewFromInt(int64(rnd.Intn(10))))
		case 6:
			_ = c.SetShippingCost(decimal.NewFromInt(int64(rnd.Intn(10))))
		}
		assertCartTotals(t, c)
	}
}

func TestCart_Clone(t *testing.T) {
	c := entities.NewCart("cart-1", "user-1", time.Now())
	require.NoError(t, c.AddOrMergeItem(item("p1", 1, "1.00")))

	clone := c.Clone()
	require.NoError(t, clone.SetQuantity("p1", 9))

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, 9, clone.Items[0].Quantity)
}
