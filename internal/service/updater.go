package service

import (
	"context"
	"errors"

	"github.com/SergeyBogomolovv/order-fulfillment/internal/entities"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/trm"
	"github.com/SergeyBogomolovv/order-fulfillment/pkg/utils"
)

// orderUpdater применяет изменение к свежей копии заказа и сохраняет его
// с проверкой версии. При конфликте заказ перечитывается и изменение
// валидируется заново, поэтому из двух гонящихся переходов побеждает один.
type orderUpdater struct {
	txManager trm.Manager
	repo      OrderRepo
	cache     OrderCache
	retry     utils.RetryConfig
}

func newOrderUpdater(txManager trm.Manager, repo OrderRepo, cache OrderCache, retry utils.RetryConfig) *orderUpdater {
	retry.RetryIf = func(err error) bool {
		return errors.Is(err, entities.ErrConflict)
	}
	return &orderUpdater{
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		retry:     retry,
	}
}

type orderChange func(ctx context.Context, order entities.Order) (entities.Order, error)

func (u *orderUpdater) update(ctx context.Context, orderID string, change orderChange) (entities.Order, error) {
	var updated entities.Order
	err := utils.RetryContext(ctx, u.retry, func() error {
		return u.txManager.Do(ctx, func(ctx context.Context) error {
			current, err := u.repo.GetOrderByID(ctx, orderID)
			if err != nil {
				return err
			}

			next, err := change(ctx, current)
			if err != nil {
				return err
			}

			appended := next.History[len(current.History):]
			if err := u.repo.UpdateOrder(ctx, next, current.Version, appended); err != nil {
				return err
			}

			next.Version = current.Version + 1
			updated = next
			return nil
		})
	})
	if err != nil {
		return entities.Order{}, err
	}

	u.cache.Set(updated.ID, updated)
	return updated, nil
}
