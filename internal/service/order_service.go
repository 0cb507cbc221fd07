package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/idan2468/go-store/internal/domain"
	"github.com/idan2468/go-store/internal/invoice"
	"github.com/idan2468/go-store/internal/repository"
)

type OrderService struct {
	users      repository.UserRepository
	products   repository.ProductRepository
	orders     repository.OrderRepository
	cache      CacheInvalidator
	invoiceDir string
}

// CacheInvalidator drops a user's cached cart after the live cart changes.
type CacheInvalidator interface {
	Delete(ctx context.Context, userID string) error
}

func NewOrderService(users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository, cache CacheInvalidator, invoiceDir string) *OrderService {
	return &OrderService{
		users:      users,
		products:   products,
		orders:     orders,
		cache:      cache,
		invoiceDir: invoiceDir,
	}
}

// PlaceOrder freezes the user's cart into a new immutable order and clears
// the live cart. The snapshot total is recomputed from live product data;
// lines whose product vanished mid-flight are dropped rather than failing
// the whole checkout. The order insert and the cart clear are two separate
// writes with no transaction around them: last-write-wins on the user
// document is the accepted consistency model here.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string) (*domain.Order, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved, total, err := resolveLines(ctx, s.products, user.Cart.Lines)
	if err != nil {
		return nil, err
	}
	if len(resolved) == 0 {
		return nil, domain.ErrEmptyCart
	}

	frozen := domain.Cart{
		Lines:      make([]domain.CartLine, 0, len(resolved)),
		TotalPrice: total,
	}
	for _, line := range resolved {
		frozen.Lines = append(frozen.Lines, domain.CartLine{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}

	order := &domain.Order{
		UserID: userID,
		Cart:   frozen,
	}
	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	user.Cart.Clear()
	if err := s.users.SaveCart(ctx, userID, user.Cart); err != nil {
		return nil, fmt.Errorf("order %s created but cart clear failed: %w", order.ID, err)
	}

	if err := s.cache.Delete(ctx, userID); err != nil {
		slog.Warn("cache invalidate error", "user_id", userID, "error", err)
	}

	return order, nil
}

// ListOrders returns all of the user's orders joined against current product
// records. Only productId and quantity are frozen on the order, so the
// price and title shown are the product's current state.
func (s *OrderService) ListOrders(ctx context.Context, userID string) ([]domain.ResolvedOrder, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resolved := make([]domain.ResolvedOrder, 0, len(orders))
	for _, order := range orders {
		lines, _, err := resolveLines(ctx, s.products, order.Cart.Lines)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, domain.ResolvedOrder{
			ID:         order.ID,
			UserID:     order.UserID,
			Lines:      lines,
			TotalPrice: order.Cart.TotalPrice,
			CreatedAt:  order.CreatedAt,
		})
	}

	return resolved, nil
}

// Invoice renders a PDF invoice for the order to w and keeps a copy on disk.
// Only the order's owner may download it. Line items are joined to current
// product data; the grand total is the order's stored totalPrice.
func (s *OrderService) Invoice(ctx context.Context, orderID, requestingUserID string, w io.Writer) error {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.UserID != requestingUserID {
		return domain.ErrUnauthorized
	}

	lines, _, err := resolveLines(ctx, s.products, order.Cart.Lines)
	if err != nil {
		return err
	}

	out := w
	if file, err := s.createInvoiceFile(orderID); err != nil {
		// Keeping a disk copy is best effort, the download must still work.
		slog.Warn("invoice file create failed", "order_id", orderID, "error", err)
	} else {
		defer file.Close()
		out = io.MultiWriter(w, file)
	}

	return invoice.Render(out, orderID, lines, order.Cart.TotalPrice)
}

func (s *OrderService) createInvoiceFile(orderID string) (*os.File, error) {
	if err := os.MkdirAll(s.invoiceDir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(s.invoiceDir, fmt.Sprintf("invoice-%s.pdf", orderID)))
}
