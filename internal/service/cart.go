package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/cache"
	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

type CartRepo interface {
	GetOrCreateCart(ctx context.Context, userID string) (entities.Cart, error)
	// LockCart блокирует корзину пользователя до конца текущей транзакции.
	LockCart(ctx context.Context, userID string) (entities.Cart, error)
	SaveCart(ctx context.Context, cart entities.Cart) error
}

type CartCache interface {
	Get(ctx context.Context, userID string) (entities.Cart, error)
	Generation(ctx context.Context, userID string) (int64, error)
	// SetIfGeneration не должен писать, если после чтения gen был Delete.
	SetIfGeneration(ctx context.Context, cart entities.Cart, gen int64) (bool, error)
	Delete(ctx context.Context, userID string) error
}

type ProductReader interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
}

type StockChecker interface {
	InvalidLines(ctx context.Context, items []entities.CartItem) ([]string, error)
}

type CouponResolver interface {
	Resolve(code string, cart entities.Cart) (decimal.Decimal, error)
}

type CartLine struct {
	ProductID string
	Quantity  int
	Variant   string
}

type LineError struct {
	ProductID string
	Err       error
}

type cartService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      CartRepo
	cache     CartCache
	products  ProductReader
	stock     StockChecker
	coupons   CouponResolver
	group     singleflight.Group
	now       func() time.Time
}

func NewCartService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo CartRepo,
	cache CartCache,
	products ProductReader,
	stock StockChecker,
	coupons CouponResolver,
) *cartService {
	return &cartService{
		logger:    logger.With(slog.String("service", "cart")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		products:  products,
		stock:     stock,
		coupons:   coupons,
		now:       time.Now,
	}
}

// GetCart читает корзину через кэш. Одновременные промахи по одному пользователю
// схлопываются в один запрос к базе.
func (s *cartService) GetCart(ctx context.Context, userID string) (entities.Cart, error) {
	cart, err := s.cache.Get(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("failed to read cart from cache", slog.String("user_id", userID), slog.Any("error", err))
	}

	v, err, _ := s.group.Do(userID, func() (any, error) {
		// Поколение читается до базы: инвалидация между чтением и записью отменит запись.
		gen, genErr := s.cache.Generation(ctx, userID)

		cart, err := s.repo.GetOrCreateCart(ctx, userID)
		if err != nil {
			return nil, err
		}
		if genErr != nil {
			s.logger.Warn("skipping cart cache fill", slog.String("user_id", userID), slog.Any("error", genErr))
			return cart, nil
		}

		written, err := s.cache.SetIfGeneration(ctx, cart, gen)
		if err != nil {
			s.logger.Warn("failed to cache cart", slog.String("user_id", userID), slog.Any("error", err))
		} else if !written {
			s.logger.Debug("cart changed while loading, cache fill skipped", slog.String("user_id", userID))
		}
		return cart, nil
	})
	if err != nil {
		return entities.Cart{}, fmt.Errorf("failed to get cart: %w", err)
	}
	return v.(entities.Cart).Clone(), nil
}

func (s *cartService) AddItem(ctx context.Context, userID string, line CartLine) (entities.Cart, error) {
	if line.Quantity <= 0 {
		return entities.Cart{}, fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, line.Quantity)
	}

	return s.mutate(ctx, userID, func(ctx context.Context, cart *entities.Cart) error {
		return s.addLine(ctx, cart, line)
	})
}

// AddItems добавляет несколько позиций. Ошибки по отдельным позициям возвращаются
// в []LineError, остальные позиции сохраняются. С allOrNothing любая ошибка отменяет всё.
func (s *cartService) AddItems(ctx context.Context, userID string, lines []CartLine, allOrNothing bool) (entities.Cart, []LineError, error) {
	return s.bulk(ctx, userID, lines, allOrNothing, s.addLine)
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID string, line CartLine) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(ctx context.Context, cart *entities.Cart) error {
		return s.updateLine(ctx, cart, line)
	})
}

func (s *cartService) UpdateItems(ctx context.Context, userID string, lines []CartLine, allOrNothing bool) (entities.Cart, []LineError, error) {
	return s.bulk(ctx, userID, lines, allOrNothing, s.updateLine)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID string) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		return cart.RemoveItem(productID)
	})
}

func (s *cartService) Clear(ctx context.Context, userID string) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		cart.Clear()
		return nil
	})
}

func (s *cartService) ApplyCoupon(ctx context.Context, userID, code string) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		discount, err := s.coupons.Resolve(code, *cart)
		if err != nil {
			return err
		}
		return cart.ApplyCoupon(NormalizeCoupon(code), discount)
	})
}

func (s *cartService) RemoveCoupon(ctx context.Context, userID string) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		cart.RemoveCoupon()
		return nil
	})
}

func (s *cartService) SetShippingCost(ctx context.Context, userID string, cost decimal.Decimal) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		return cart.SetShippingCost(cost)
	})
}

func (s *cartService) SetShippingMethod(ctx context.Context, userID, methodID string, cost decimal.Decimal) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		return cart.SetShippingMethod(methodID, cost)
	})
}

func (s *cartService) SetTax(ctx context.Context, userID string, tax decimal.Decimal) (entities.Cart, error) {
	return s.mutate(ctx, userID, func(_ context.Context, cart *entities.Cart) error {
		return cart.SetTax(tax)
	})
}

// InvalidItems возвращает товары корзины, которые сейчас нельзя заказать.
func (s *cartService) InvalidItems(ctx context.Context, userID string) ([]string, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.stock.InvalidLines(ctx, cart.Items)
}

func (s *cartService) ValidateCart(ctx context.Context, userID string) error {
	invalid, err := s.InvalidItems(ctx, userID)
	if err != nil {
		return err
	}
	if len(invalid) > 0 {
		return &entities.InvalidCartError{ProductIDs: invalid}
	}
	return nil
}

func (s *cartService) RemoveInvalidItems(ctx context.Context, userID string) (entities.Cart, []string, error) {
	var removed []string
	cart, err := s.mutate(ctx, userID, func(ctx context.Context, cart *entities.Cart) error {
		invalid, err := s.stock.InvalidLines(ctx, cart.Items)
		if err != nil {
			return err
		}
		for _, id := range invalid {
			if err := cart.RemoveItem(id); err != nil {
				return err
			}
		}
		removed = invalid
		return nil
	})
	if err != nil {
		return entities.Cart{}, nil, err
	}
	return cart, removed, nil
}

// MergeGuestCart переносит позиции гостевой корзины в корзину пользователя.
// Количество урезается до остатка, недоступные товары пропускаются.
func (s *cartService) MergeGuestCart(ctx context.Context, userID string, guest []CartLine) (entities.Cart, []string, error) {
	var skipped []string
	cart, err := s.mutate(ctx, userID, func(ctx context.Context, cart *entities.Cart) error {
		skipped = skipped[:0]
		for _, line := range guest {
			product, err := s.products.GetProductByID(ctx, line.ProductID)
			if errors.Is(err, entities.ErrNotFound) {
				skipped = append(skipped, line.ProductID)
				continue
			}
			if err != nil {
				return err
			}

			qty := min(line.Quantity, product.StockQuantity-cart.QuantityOf(product.ID))
			if qty <= 0 || !product.IsActive {
				skipped = append(skipped, line.ProductID)
				continue
			}
			if err := cart.AddOrMergeItem(itemFromProduct(product, qty, line.Variant)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Cart{}, nil, err
	}
	return cart, skipped, nil
}

func (s *cartService) addLine(ctx context.Context, cart *entities.Cart, line CartLine) error {
	if line.Quantity <= 0 {
		return fmt.Errorf("%w: %d", entities.ErrInvalidQuantity, line.Quantity)
	}

	product, err := s.products.GetProductByID(ctx, line.ProductID)
	if err != nil {
		return err
	}

	merged := cart.QuantityOf(product.ID) + line.Quantity
	if !product.CanFulfil(merged) {
		return fmt.Errorf("%w: product %s has %d, requested %d",
			entities.ErrInsufficientStock, product.ID, product.StockQuantity, merged)
	}

	return cart.AddOrMergeItem(itemFromProduct(product, line.Quantity, line.Variant))
}

func (s *cartService) updateLine(ctx context.Context, cart *entities.Cart, line CartLine) error {
	if line.Quantity > 0 {
		product, err := s.products.GetProductByID(ctx, line.ProductID)
		if err != nil {
			return err
		}
		if !product.CanFulfil(line.Quantity) {
			return fmt.Errorf("%w: product %s has %d, requested %d",
				entities.ErrInsufficientStock, product.ID, product.StockQuantity, line.Quantity)
		}
	}
	return cart.SetQuantity(line.ProductID, line.Quantity)
}

func (s *cartService) bulk(
	ctx context.Context,
	userID string,
	lines []CartLine,
	allOrNothing bool,
	apply func(ctx context.Context, cart *entities.Cart, line CartLine) error,
) (entities.Cart, []LineError, error) {
	var failed []LineError
	cart, err := s.mutate(ctx, userID, func(ctx context.Context, cart *entities.Cart) error {
		failed = failed[:0]
		for _, line := range lines {
			err := apply(ctx, cart, line)
			if err == nil {
				continue
			}
			if !isLineError(err) {
				return err
			}
			failed = append(failed, LineError{ProductID: line.ProductID, Err: err})
		}

		if allOrNothing && len(failed) > 0 {
			return fmt.Errorf("%w: %d of %d lines failed", entities.ErrBulkRejected, len(failed), len(lines))
		}
		return nil
	})
	if err != nil {
		return entities.Cart{}, failed, err
	}
	return cart, failed, nil
}

// mutate выполняет fn над заблокированной корзиной в транзакции, пересчитывает
// скидку по купону, сохраняет корзину и сбрасывает кэш.
func (s *cartService) mutate(ctx context.Context, userID string, fn func(ctx context.Context, cart *entities.Cart) error) (entities.Cart, error) {
	var result entities.Cart
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		cart, err := s.repo.LockCart(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock cart: %w", err)
		}

		if err := fn(ctx, &cart); err != nil {
			return err
		}

		s.refreshDiscount(&cart)
		cart.UpdatedAt = s.now()

		if err := s.repo.SaveCart(ctx, cart); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		result = cart
		return nil
	})
	if err != nil {
		return entities.Cart{}, err
	}

	s.invalidate(ctx, userID)
	return result, nil
}

func (s *cartService) refreshDiscount(cart *entities.Cart) {
	if cart.CouponCode == "" {
		if !cart.Discount.IsZero() {
			cart.RemoveCoupon()
		}
		return
	}

	discount, err := s.coupons.Resolve(cart.CouponCode, *cart)
	if err != nil {
		s.logger.Warn("dropping coupon that no longer applies",
			slog.String("cart_id", cart.ID), slog.String("coupon", cart.CouponCode), slog.Any("error", err))
		cart.RemoveCoupon()
		return
	}
	_ = cart.ApplyCoupon(cart.CouponCode, discount)
}

func (s *cartService) invalidate(ctx context.Context, userID string) {
	if err := s.cache.Delete(ctx, userID); err != nil {
		s.logger.Warn("failed to invalidate cart cache", slog.String("user_id", userID), slog.Any("error", err))
	}
}

func isLineError(err error) bool {
	return errors.Is(err, entities.ErrNotFound) ||
		errors.Is(err, entities.ErrInsufficientStock) ||
		errors.Is(err, entities.ErrBadRequest)
}

func itemFromProduct(p entities.Product, qty int, variant string) entities.CartItem {
	return entities.CartItem{
		ProductID: p.ID,
		Quantity:  qty,
		Price:     p.EffectivePrice(),
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		SKU:       p.SKU,
		Variant:   variant,
	}
}
