package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-api/internal/domain"
	"product-api/internal/repository"
	"product-api/internal/repository/memory"
)

func newProductService() ProductService {
	return NewProductService(memory.NewProductRepository())
}

func strPtr(s string) *string { return &s }

func TestProductService_CreateThenGetRoundTrip(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductInput{
		Name:        "Mouse",
		Price:       25,
		Description: strPtr("Wireless mouse"),
		Category:    strPtr("electronics"),
		InStock:     boolPtr(true),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Mouse", got.Name)
	assert.Equal(t, float64(25), got.Price)
	assert.Equal(t, "Wireless mouse", got.Description)
	assert.Equal(t, "electronics", got.Category)
	assert.True(t, got.InStock)
}

func TestProductService_GetUnknownID(t *testing.T) {
	svc := newProductService()

	_, err := svc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductService_RepeatedReadsAreIdentical(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductInput{Name: "Desk", Price: 150})
	require.NoError(t, err)

	first, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	second, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProductService_UpdateMergesUnsetFields(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductInput{
		Name:        "Keyboard",
		Price:       45,
		Description: strPtr("Mechanical keyboard"),
		Category:    strPtr("electronics"),
		InStock:     boolPtr(true),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateProduct(ctx, created.ID, domain.ProductInput{
		Name:  "Keyboard",
		Price: 55,
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, float64(55), updated.Price)
	assert.Equal(t, "Mechanical keyboard", updated.Description)
	assert.Equal(t, "electronics", updated.Category)
	assert.True(t, updated.InStock)
	require.NotNil(t, updated.UpdatedAt)
}

func TestProductService_UpdateUnknownID(t *testing.T) {
	svc := newProductService()

	_, err := svc.UpdateProduct(context.Background(), "nope", domain.ProductInput{Name: "X", Price: 1})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductService_DeleteIsNotRepeatable(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, domain.ProductInput{Name: "Lamp", Price: 30})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProduct(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)

	err = svc.DeleteProduct(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductService_ListAppliesQuery(t *testing.T) {
	svc := newProductService()
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, domain.ProductInput{Name: "Mouse", Price: 25})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, domain.ProductInput{Name: "Monitor", Price: 300})
	require.NoError(t, err)

	page, err := svc.ListProducts(ctx, ListQuery{Search: "mouse", Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, page.Total)
	assert.Equal(t, "Mouse", page.Data[0].Name)
}
