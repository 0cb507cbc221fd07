package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stripe/stripe-go/v81"

	"github.com/idan2468/go-store/internal/domain"
)

// OrderService is the slice of the order engine the HTTP layer needs.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID string) (*domain.Order, error)
	ListOrders(ctx context.Context, userID string) ([]domain.ResolvedOrder, error)
	Invoice(ctx context.Context, orderID, requestingUserID string, w io.Writer) error
}

// CheckoutProvider turns a resolved cart into a hosted payment session.
type CheckoutProvider interface {
	CreateSession(cart *domain.ResolvedCart) (*stripe.CheckoutSession, error)
}

type OrdersHandler struct {
	orders   OrderService
	carts    CartService
	checkout CheckoutProvider
	timeout  time.Duration
}

func NewOrdersHandler(orders OrderService, carts CartService, checkout CheckoutProvider, timeout time.Duration) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		carts:    carts,
		checkout: checkout,
		timeout:  timeout,
	}
}

type CheckoutResponseDTO struct {
	SessionID   string              `json:"session_id"`
	CheckoutURL string              `json:"checkout_url"`
	Cart        domain.ResolvedCart `json:"cart"`
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return
	}

	orders, err := h.orders.ListOrders(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.ResolvedOrder{} // JSON array, not null
	}

	respondJSON(w, http.StatusOK, orders)
}

// Checkout builds a payment session from the current cart. The order itself
// is only placed once the payment provider redirects to CheckoutSuccess.
func (h *OrdersHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return
	}

	cart, err := h.carts.GetCart(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if len(cart.Lines) == 0 {
		handleServiceError(w, domain.ErrEmptyCart)
		return
	}

	sess, err := h.checkout.CreateSession(cart)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CheckoutResponseDTO{
		SessionID:   sess.ID,
		CheckoutURL: sess.URL,
		Cart:        *cart,
	})
}

func (h *OrdersHandler) CheckoutSuccess(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return
	}

	order, err := h.orders.PlaceOrder(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *OrdersHandler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "missing user authentication")
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order_id is required")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s.pdf", orderID))

	if err := h.orders.Invoice(ctx, orderID, userID, w); err != nil {
		handleServiceError(w, err)
		return
	}
}
