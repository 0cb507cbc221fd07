package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires every handler behind the shared middleware stack. Catalog
// browsing is public; cart, orders and the admin panel require a token.
func NewRouter(auth *AuthHandler, products *ProductHandler, carts *CartHandler, orders *OrdersHandler, tokens *TokenAuth) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/signup", auth.Signup)
		r.Post("/login", auth.Login)
		r.Post("/password-reset", auth.StartReset)
		r.Post("/password-reset/confirm", auth.Reset)

		r.Get("/products", products.List)
		r.Get("/products/{product_id}", products.Get)

		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", carts.GetCart)
				r.Post("/items", carts.AddItem)
				r.Delete("/items/{product_id}", carts.RemoveItem)
			})

			r.Get("/checkout", orders.Checkout)
			r.Post("/checkout/success", orders.CheckoutSuccess)
			r.Get("/orders", orders.ListOrders)
			r.Get("/orders/{order_id}/invoice", orders.Invoice)

			r.Route("/admin/products", func(r chi.Router) {
				r.Get("/", products.ListMine)
				r.Post("/", products.Create)
				r.Put("/{product_id}", products.Update)
				r.Delete("/{product_id}", products.Delete)
			})
		})
	})

	return r
}
