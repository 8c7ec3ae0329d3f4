package repository

import (
	"context"
	"errors"

	"product-api/internal/domain"
)

// ErrProductNotFound indicates that no product exists under the requested id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository exposes storage operations for Product entities.
type ProductRepository interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Insert(ctx context.Context, input domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
