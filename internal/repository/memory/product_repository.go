package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"product-api/internal/domain"
	"product-api/internal/repository"
)

// ProductRepository keeps the catalog in process memory. A single
// mutex serializes mutations against each other and against reads, so
// no caller ever observes a partially applied write.
type ProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (r *ProductRepository) Insert(ctx context.Context, input domain.ProductInput) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := domain.Product{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Price:     input.Price,
		CreatedAt: time.Now().UTC(),
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Category != nil {
		p.Category = *input.Category
	}
	if input.InStock != nil {
		p.InStock = *input.InStock
	}

	r.products = append(r.products, p)
	return &p, nil
}

func (r *ProductRepository) Update(ctx context.Context, id string, input domain.ProductInput) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID != id {
			continue
		}

		p := r.products[i]
		p.Name = input.Name
		p.Price = input.Price
		if input.Description != nil {
			p.Description = *input.Description
		}
		if input.Category != nil {
			p.Category = *input.Category
		}
		if input.InStock != nil {
			p.InStock = *input.InStock
		}
		now := time.Now().UTC()
		p.UpdatedAt = &now

		r.products[i] = p
		return &p, nil
	}
	return nil, repository.ErrProductNotFound
}

func (r *ProductRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
