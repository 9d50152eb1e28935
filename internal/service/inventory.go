package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"
)

type ProductRepo interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	// UpdateStock должен вернуть entities.ErrConflict, если версия товара изменилась.
	UpdateStock(ctx context.Context, productID string, version int64, stock, totalSales int) error
}

type inventory struct {
	logger *slog.Logger
	repo   ProductRepo
	retry  utils.RetryConfig
}

func NewInventory(logger *slog.Logger, repo ProductRepo, retry utils.RetryConfig) *inventory {
	// Прерванную транзакцию повторяет вызывающий код целиком.
	retry.RetryIf = func(err error) bool {
		return errors.Is(err, entities.ErrConflict) && !errors.Is(err, entities.ErrTxAborted)
	}

	return &inventory{
		logger: logger.With(slog.String("service", "inventory")),
		repo:   repo,
		retry:  retry,
	}
}

// Reserve списывает qty единиц товара и увеличивает число продаж.
// При нехватке остатка ничего не меняется.
func (s *inventory) Reserve(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, qty)
	}

	return s.update(ctx, productID, func(p entities.Product) (int, int, error) {
		if !p.CanFulfil(qty) {
			return 0, 0, fmt.Errorf("%w: product %s has %d, requested %d",
				entities.ErrInsufficientStock, p.ID, p.StockQuantity, qty)
		}
		return p.StockQuantity - qty, p.TotalSales + qty, nil
	})
}

// Release возвращает qty единиц на склад. Число продаж не уходит ниже нуля.
func (s *inventory) Release(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, qty)
	}

	return s.update(ctx, productID, func(p entities.Product) (int, int, error) {
		return p.StockQuantity + qty, max(0, p.TotalSales-qty), nil
	})
}

// ReleaseAll пытается вернуть на склад все позиции, даже если часть из них падает.
// Строки товаров блокируются в порядке ProductID, как и при оформлении заказа.
// Прерванная транзакция возвращается сразу, продолжать в ней нельзя.
func (s *inventory) ReleaseAll(ctx context.Context, items []entities.OrderItem) error {
	var errs []error
	for _, it := range byProductID(items) {
		if err := s.Release(ctx, it.ProductID, it.Quantity); err != nil {
			if errors.Is(err, entities.ErrTxAborted) {
				return err
			}
			stockReleaseFailures.Inc()
			s.logger.Error("failed to release stock",
				slog.String("product_id", it.ProductID),
				slog.Int("quantity", it.Quantity),
				slog.Any("error", err),
			)
			errs = append(errs, fmt.Errorf("release %s: %w", it.ProductID, err))
		}
	}
	return errors.Join(errs...)
}

func (s *inventory) CheckAvailability(ctx context.Context, productID string, qty int) (bool, error) {
	p, err := s.repo.GetProductByID(ctx, productID)
	if errors.Is(err, entities.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.CanFulfil(qty), nil
}

// InvalidLines возвращает товары, которые сейчас нельзя купить в нужном количестве.
// Отсутствующий товар считается невалидной позицией, а не ошибкой.
func (s *inventory) InvalidLines(ctx context.Context, items []entities.CartItem) ([]string, error) {
	var invalid []string
	for _, it := range items {
		ok, err := s.CheckAvailability(ctx, it.ProductID, it.Quantity)
		if err != nil {
			return nil, fmt.Errorf("failed to check product %s: %w", it.ProductID, err)
		}
		if !ok {
			invalid = append(invalid, it.ProductID)
		}
	}
	return invalid, nil
}

func (s *inventory) update(ctx context.Context, productID string, next func(p entities.Product) (stock, sales int, err error)) error {
	return utils.RetryContext(ctx, s.retry, func() error {
		p, err := s.repo.GetProductByID(ctx, productID)
		if err != nil {
			return err
		}

		stock, sales, err := next(p)
		if err != nil {
			return err
		}

		err = s.repo.UpdateStock(ctx, p.ID, p.Version, stock, sales)
		if errors.Is(err, entities.ErrConflict) {
			stockConflicts.Inc()
			s.logger.Debug("stock version conflict", slog.String("product_id", p.ID), slog.Int64("version", p.Version))
		}
		return err
	})
}

// byProductID возвращает копию позиций, отсортированную по ProductID.
func byProductID(items []entities.OrderItem) []entities.OrderItem {
	return slices.SortedStableFunc(slices.Values(items), func(a, b entities.OrderItem) int {
		return strings.Compare(a.ProductID, b.ProductID)
	})
}
