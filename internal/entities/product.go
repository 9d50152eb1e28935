package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID            string
	SKU           string
	Name          string
	ImageURL      string
	Price         decimal.Decimal
	SalePrice     decimal.NullDecimal
	StockQuantity int
	TotalSales    int
	IsActive      bool
	Version       int64
}

// EffectivePrice возвращает цену со скидкой, если она задана и ниже базовой.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid && p.SalePrice.Decimal.IsPositive() && p.SalePrice.Decimal.LessThan(p.Price) {
		return p.SalePrice.Decimal
	}
	return p.Price
}

func (p Product) IsInStock() bool {
	return p.StockQuantity > 0
}

func (p Product) CanFulfil(qty int) bool {
	return p.IsActive && p.IsInStock() && p.StockQuantity >= qty
}

type User struct {
	ID    string
	Email string
	Phone string
	Name  string
}
