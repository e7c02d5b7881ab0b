package port

import (
	"context"

	"github.com/rl1809/shop-catalog/internal/core/domain"
)

// ProductRepository is the persistent-store boundary for products.
type ProductRepository interface {
	// Find returns products matching the filter, sorted and paginated
	// as the filter requests.
	Find(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	// FindByID retrieves a product by id, returning (nil, nil) when no
	// such product exists.
	FindByID(ctx context.Context, id string) (*domain.Product, error)

	// DistinctCategories returns the distinct category values across
	// all products.
	DistinctCategories(ctx context.Context) ([]string, error)

	// Count returns the number of products matching the filter,
	// ignoring the filter's pagination fields.
	Count(ctx context.Context, filter domain.ProductFilter) (int, error)

	// Create persists a new product and returns it with store-assigned
	// timestamps.
	Create(ctx context.Context, p domain.Product) (domain.Product, error)

	// Save persists all fields of an existing product.
	Save(ctx context.Context, p domain.Product) error

	// Delete removes the product.
	Delete(ctx context.Context, p domain.Product) error
}

// StockDecrementer is implemented by stores that can decrement stock
// conditionally in a single round trip. The decrement succeeds only if
// the remaining stock would be non-negative.
type StockDecrementer interface {
	DecrementStock(ctx context.Context, productID string, quantity int) (bool, error)
}
