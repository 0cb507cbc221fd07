package service

import (
	"context"
	"sync"

	"github.com/idan2468/go-store/internal/cache"
	"github.com/idan2468/go-store/internal/domain"
)

type mockUserRepository struct {
	m     sync.RWMutex
	users map[string]*domain.User
	err   error
	// saveCartErrs lets a test fail the save for specific users only.
	saveCartErrs map[string]error
	saveCount    int
}

func newMockUserRepository(users ...*domain.User) *mockUserRepository {
	repo := &mockUserRepository{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (m *mockUserRepository) GetUser(_ context.Context, userID string) (*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockUserRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUserRepository) CreateUser(_ context.Context, user *domain.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepository) UpdateUser(_ context.Context, user *domain.User) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepository) SaveCart(_ context.Context, userID string, cart domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if err, ok := m.saveCartErrs[userID]; ok {
		return err
	}
	user, ok := m.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Cart = cart
	m.saveCount++
	return nil
}

func (m *mockUserRepository) FindUsersByCartProduct(_ context.Context, productID string) ([]*domain.User, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var matched []*domain.User
	for _, user := range m.users {
		if _, ok := user.Cart.Line(productID); ok {
			clone := *user
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (m *mockUserRepository) getCart(userID string) domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.users[userID].Cart
}

type mockProductRepository struct {
	m        sync.RWMutex
	products map[string]domain.Product
	err      error
}

func newMockProductRepository(products ...domain.Product) *mockProductRepository {
	repo := &mockProductRepository{products: make(map[string]domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (m *mockProductRepository) GetProduct(_ context.Context, productID string) (*domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[productID]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockProductRepository) GetProducts(_ context.Context, productIDs []string) (map[string]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	resolved := make(map[string]domain.Product, len(productIDs))
	for _, id := range productIDs {
		if p, ok := m.products[id]; ok {
			resolved[id] = p
		}
	}
	return resolved, nil
}

func (m *mockProductRepository) ListProducts(_ context.Context, page, perPage int) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var all []domain.Product
	for _, p := range m.products {
		all = append(all, p)
	}
	return all, nil
}

func (m *mockProductRepository) CountProducts(_ context.Context) (int64, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return 0, m.err
	}
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) FindByOwner(_ context.Context, userID string) ([]domain.Product, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var owned []domain.Product
	for _, p := range m.products {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	return owned, nil
}

func (m *mockProductRepository) CreateProduct(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if product.ID == "" {
		product.ID = "prod-" + product.Title
	}
	m.products[product.ID] = *product
	return nil
}

func (m *mockProductRepository) UpdateProduct(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	existing := m.products[product.ID]
	existing.Title = product.Title
	existing.Price = product.Price
	existing.Description = product.Description
	existing.ImageURL = product.ImageURL
	m.products[product.ID] = existing
	return nil
}

func (m *mockProductRepository) DeleteProduct(_ context.Context, productID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[productID]; !ok {
		return domain.ErrProductNotFound
	}
	delete(m.products, productID)
	return nil
}

func (m *mockProductRepository) has(productID string) bool {
	m.m.RLock()
	defer m.m.RUnlock()
	_, ok := m.products[productID]
	return ok
}

type mockOrderRepository struct {
	m      sync.RWMutex
	orders map[string]*domain.Order
	err    error
	// saveCartErrs lets a test fail the save for specific orders only.
	saveCartErrs map[string]error
}

func newMockOrderRepository(orders ...*domain.Order) *mockOrderRepository {
	repo := &mockOrderRepository{orders: make(map[string]*domain.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (m *mockOrderRepository) GetOrder(_ context.Context, orderID string) (*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	order, ok := m.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	clone := *order
	return &clone, nil
}

func (m *mockOrderRepository) CreateOrder(_ context.Context, order *domain.Order) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if order.ID == "" {
		order.ID = "order-1"
	}
	clone := *order
	m.orders[order.ID] = &clone
	return nil
}

func (m *mockOrderRepository) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var matched []domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			matched = append(matched, *order)
		}
	}
	return matched, nil
}

func (m *mockOrderRepository) FindOrdersByProduct(_ context.Context, productID string) ([]*domain.Order, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	var matched []*domain.Order
	for _, order := range m.orders {
		if _, ok := order.Cart.Line(productID); ok {
			clone := *order
			matched = append(matched, &clone)
		}
	}
	return matched, nil
}

func (m *mockOrderRepository) SaveCart(_ context.Context, orderID string, cart domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	if err, ok := m.saveCartErrs[orderID]; ok {
		return err
	}
	order, ok := m.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Cart = cart
	return nil
}

func (m *mockOrderRepository) getCart(orderID string) domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.orders[orderID].Cart
}

func (m *mockOrderRepository) count() int {
	m.m.RLock()
	defer m.m.RUnlock()
	return len(m.orders)
}

type mockCache struct {
	m    sync.RWMutex
	cart *domain.Cart
	err  error
}

func (m *mockCache) Get(context.Context, string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.cart == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.cart, nil
}

func (m *mockCache) Set(_ context.Context, _ string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = cart
	return m.err
}

func (m *mockCache) Delete(context.Context, string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.cart = nil
	return m.err
}

func (m *mockCache) getCart() *domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.cart
}
