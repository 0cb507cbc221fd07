package repository

import (
	"context"

	"github.com/idan2468/go-store/internal/domain"
)

// Consumers define these interfaces, not the MongoDB implementations.

type UserRepository interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
	// SaveCart overwrites the embedded cart of one user document.
	SaveCart(ctx context.Context, userID string, cart domain.Cart) error
	// FindUsersByCartProduct returns every user whose cart references productID.
	FindUsersByCartProduct(ctx context.Context, productID string) ([]*domain.User, error)
}

type ProductRepository interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	// GetProducts batch-resolves an id set in a single query. Missing ids are
	// simply absent from the result map, never an error.
	GetProducts(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, page, perPage int) ([]domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
	FindByOwner(ctx context.Context, userID string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) error
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
	CreateOrder(ctx context.Context, order *domain.Order) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// FindOrdersByProduct returns every order whose cart references productID.
	FindOrdersByProduct(ctx context.Context, productID string) ([]*domain.Order, error)
	// SaveCart overwrites the frozen cart of one order document. Only the
	// referential-integrity sweep is allowed to call this.
	SaveCart(ctx context.Context, orderID string, cart domain.Cart) error
}
