package service

import (
	"context"
	"errors"

	"product-api/internal/domain"
	"product-api/internal/repository"
)

// ProductService coordinates catalog operations backed by a repository.
type ProductService interface {
	ListProducts(ctx context.Context, q ListQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) ListProducts(ctx context.Context, q ListQuery) (*ProductPage, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return resolveQuery(products, q), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *productService) CreateProduct(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, errors.New("product name is required")
	}
	return s.products.Insert(ctx, input)
}

func (s *productService) UpdateProduct(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	return s.products.Update(ctx, id, input)
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	deleted, err := s.products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return repository.ErrProductNotFound
	}
	return nil
}
