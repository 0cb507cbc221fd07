package service

import (
	"context"

	"github.com/idan2468/go-store/internal/domain"
	"github.com/idan2468/go-store/internal/repository"
)

type ProductService struct {
	products repository.ProductRepository
	sweeper  *Sweeper
}

func NewProductService(products repository.ProductRepository, sweeper *Sweeper) *ProductService {
	return &ProductService{
		products: products,
		sweeper:  sweeper,
	}
}

// ProductPage is one page of the catalog plus the numbers the pager needs.
type ProductPage struct {
	Products []domain.Product `json:"products"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Total    int64            `json:"total"`
}

func (s *ProductService) ListProducts(ctx context.Context, page, perPage int) (*ProductPage, error) {
	total, err := s.products.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	products, err := s.products.ListProducts(ctx, page, perPage)
	if err != nil {
		return nil, err
	}

	return &ProductPage{
		Products: products,
		Page:     page,
		PerPage:  perPage,
		Total:    total,
	}, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.products.GetProduct(ctx, productID)
}

func (s *ProductService) ListByOwner(ctx context.Context, userID string) ([]domain.Product, error) {
	return s.products.FindByOwner(ctx, userID)
}

func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) error {
	return s.products.CreateProduct(ctx, product)
}

// UpdateProduct applies title/price/description/image changes. Only the
// owning user may edit a product.
func (s *ProductService) UpdateProduct(ctx context.Context, userID string, product *domain.Product) error {
	existing, err := s.products.GetProduct(ctx, product.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return domain.ErrUnauthorized
	}
	if product.ImageURL == "" {
		product.ImageURL = existing.ImageURL
	}

	return s.products.UpdateProduct(ctx, product)
}

// DeleteProduct removes a product after sweeping its references out of every
// cart and order. The sweep runs first so a sweep-time price lookup still
// sees the product; the physical delete happens last.
func (s *ProductService) DeleteProduct(ctx context.Context, userID, productID string) error {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}
	if product.UserID != userID {
		return domain.ErrUnauthorized
	}

	if err := s.sweeper.SweepProductRefs(ctx, product); err != nil {
		return err
	}

	return s.products.DeleteProduct(ctx, productID)
}
