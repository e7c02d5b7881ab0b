package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rl1809/shop-catalog/internal/core/domain"
	"github.com/rl1809/shop-catalog/internal/port"
)

// CreateProductInput carries the required fields for a new product.
type CreateProductInput struct {
	Name     string
	Price    int64
	Stock    int
	Category string
	Photo    string
}

// UpdateProductInput carries optional field updates; nil means "leave
// unchanged".
type UpdateProductInput struct {
	Name     *string
	Price    *int64
	Stock    *int
	Category *string
	Photo    *string
}

// ProductMutation performs product writes and invalidates the affected
// cache keys on success.
type ProductMutation struct {
	repo        port.ProductRepository
	invalidator *Invalidator
}

func NewProductMutation(repo port.ProductRepository, invalidator *Invalidator) *ProductMutation {
	return &ProductMutation{repo: repo, invalidator: invalidator}
}

// Create validates the input, persists the product and invalidates the
// product-wide listing keys. No store call is made on invalid input.
func (m *ProductMutation) Create(ctx context.Context, in CreateProductInput) (domain.Product, error) {
	if in.Name == "" || in.Category == "" || in.Photo == "" {
		return domain.Product{}, fmt.Errorf("name, category and photo are required: %w", domain.ErrValidation)
	}
	if in.Price <= 0 {
		return domain.Product{}, fmt.Errorf("price must be positive: %w", domain.ErrValidation)
	}
	if in.Stock < 0 {
		return domain.Product{}, fmt.Errorf("stock must be non-negative: %w", domain.ErrValidation)
	}

	product, err := m.repo.Create(ctx, domain.Product{
		ID:       uuid.NewString(),
		Name:     in.Name,
		Price:    in.Price,
		Stock:    in.Stock,
		Category: strings.ToLower(in.Category),
		Photo:    in.Photo,
	})
	if err != nil {
		return domain.Product{}, fmt.Errorf("create product: %w", err)
	}

	m.invalidator.Invalidate(ctx, ChangeDescriptor{Product: true})

	return product, nil
}

// Update applies the given fields to an existing product.
func (m *ProductMutation) Update(ctx context.Context, id string, in UpdateProductInput) (domain.Product, error) {
	product, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("query product %s: %w", id, err)
	}
	if product == nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Category != nil {
		product.Category = strings.ToLower(*in.Category)
	}
	if in.Photo != nil {
		product.Photo = *in.Photo
	}

	if err := m.repo.Save(ctx, *product); err != nil {
		return domain.Product{}, fmt.Errorf("save product %s: %w", id, err)
	}

	m.invalidator.Invalidate(ctx, ChangeDescriptor{Product: true, ProductID: product.ID})

	return *product, nil
}

// Delete removes a product.
func (m *ProductMutation) Delete(ctx context.Context, id string) error {
	product, err := m.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("query product %s: %w", id, err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}

	if err := m.repo.Delete(ctx, *product); err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	m.invalidator.Invalidate(ctx, ChangeDescriptor{Product: true, ProductID: product.ID})

	return nil
}
