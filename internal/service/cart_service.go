package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/idan2468/go-store/internal/cache"
	"github.com/idan2468/go-store/internal/domain"
	"github.com/idan2468/go-store/internal/repository"
)

type CartService struct {
	users    repository.UserRepository
	products repository.ProductRepository
	cache    cache.CartCache
	sfg      singleflight.Group // Prevents cache stampede
}

func NewCartService(users repository.UserRepository, products repository.ProductRepository, cache cache.CartCache) *CartService {
	return &CartService{
		users:    users,
		products: products,
		cache:    cache,
	}
}

// AddToCart increments the quantity of productID in the user's cart (or
// inserts a quantity-1 line) and bumps the cached total by the product's
// price. The product is resolved before the cart is touched, so a missing
// product leaves the cart exactly as it was.
func (s *CartService) AddToCart(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Cart.Add(product.ID, product.Price)

	if err := s.users.SaveCart(ctx, userID, user.Cart); err != nil {
		slog.Error("save cart failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidateCache(userID)
	return &user.Cart, nil
}

// RemoveFromCart deletes the line matching productID and decrements the
// cached total by quantity*price. A productID with no matching line is a
// no-op success: nothing is decremented, nothing is persisted.
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if _, ok := user.Cart.Line(productID); !ok {
		return &user.Cart, nil
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	user.Cart.Remove(product.ID, product.Price)

	if err := s.users.SaveCart(ctx, userID, user.Cart); err != nil {
		slog.Error("save cart failed", "user_id", userID, "error", err)
		return nil, err
	}

	s.invalidateCache(userID)
	return &user.Cart, nil
}

// GetCart returns the user's cart joined against live product data. The line
// set is fetched cache-aside; the product join always hits the store so
// prices are current. Lines whose product no longer exists are dropped and
// the returned total is recomputed from what resolved.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.ResolvedCart, error) {
	cart, err := s.getRawCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines, total, err := resolveLines(ctx, s.products, cart.Lines)
	if err != nil {
		return nil, err
	}

	return &domain.ResolvedCart{Lines: lines, TotalPrice: total}, nil
}

// getRawCart loads the stored cart, preferring the cache. Uses singleflight
// to prevent multiple concurrent cache misses for the same user.
func (s *CartService) getRawCart(ctx context.Context, userID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.Warn("cache get error", "user_id", userID, "error", err) // log cache error but continue
		}

		user, errGet := s.users.GetUser(ctx, userID)
		if errGet != nil {
			return nil, errGet
		}

		cart = &user.Cart

		// set cache
		go func() {
			if errSet := s.cache.Set(context.Background(), userID, cart); errSet != nil {
				slog.Warn("cache set error", "user_id", userID, "error", errSet)
			}
		}()

		return cart, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *CartService) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		slog.Warn("cache invalidate error", "user_id", userID, "error", err)
	}
}
