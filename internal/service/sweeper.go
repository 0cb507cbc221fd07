package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/idan2468/go-store/internal/domain"
	"github.com/idan2468/go-store/internal/repository"
)

// Sweeper removes dangling references to a deleted product from every user
// cart and every historical order. It runs synchronously inside the product
// delete path, before the physical delete. Orders are conceptually immutable
// but the sweep mutates them anyway: referential integrity overrides
// immutability.
type Sweeper struct {
	users  repository.UserRepository
	orders repository.OrderRepository
	cache  CacheInvalidator
}

func NewSweeper(users repository.UserRepository, orders repository.OrderRepository, cache CacheInvalidator) *Sweeper {
	return &Sweeper{
		users:  users,
		orders: orders,
		cache:  cache,
	}
}

// SweepProductRefs visits every user and order whose cart references the
// product, removes the matching line and decrements totalPrice by
// quantity*price. Each document is handled in isolation: a save failure is
// logged and swallowed so the rest of the sweep still runs, and a document
// whose line disappeared between find and sweep is skipped without error.
func (s *Sweeper) SweepProductRefs(ctx context.Context, product *domain.Product) error {
	return errors.Join(
		s.sweepUsers(ctx, product),
		s.sweepOrders(ctx, product),
	)
}

func (s *Sweeper) sweepUsers(ctx context.Context, product *domain.Product) error {
	users, err := s.users.FindUsersByCartProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, user := range users {
		if !user.Cart.Remove(product.ID, product.Price) {
			continue // raced with a concurrent cart change, nothing to do
		}
		if err := s.users.SaveCart(ctx, user.ID, user.Cart); err != nil {
			slog.Error("sweep: save user cart failed", "user_id", user.ID, "product_id", product.ID, "error", err)
			continue
		}
		if err := s.cache.Delete(ctx, user.ID); err != nil {
			slog.Warn("sweep: cache invalidate failed", "user_id", user.ID, "error", err)
		}
	}
	return nil
}

func (s *Sweeper) sweepOrders(ctx context.Context, product *domain.Product) error {
	orders, err := s.orders.FindOrdersByProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	for _, order := range orders {
		if !order.Cart.Remove(product.ID, product.Price) {
			continue
		}
		if err := s.orders.SaveCart(ctx, order.ID, order.Cart); err != nil {
			slog.Error("sweep: save order cart failed", "order_id", order.ID, "product_id", product.ID, "error", err)
		}
	}

	return nil
}
