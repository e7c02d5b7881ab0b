package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rl1809/shop-catalog/internal/core/cachekey"
	"github.com/rl1809/shop-catalog/internal/core/domain"
	"github.com/rl1809/shop-catalog/internal/port"
)

const latestProductLimit = 5

// ProductQuery serves the cached product reads. Every operation follows
// the same template: derive the key, try the cache, on miss query the
// store and populate the cache with the serialized result.
type ProductQuery struct {
	repo  port.ProductRepository
	cache port.CacheStore
}

func NewProductQuery(repo port.ProductRepository, cache port.CacheStore) *ProductQuery {
	return &ProductQuery{repo: repo, cache: cache}
}

// Latest returns the newest products, capped at five.
func (q *ProductQuery) Latest(ctx context.Context) ([]domain.Product, error) {
	if raw, ok := q.cache.Get(ctx, cachekey.LatestProducts); ok {
		var products []domain.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, fmt.Errorf("decode cached latest products: %w", err)
		}
		return products, nil
	}

	products, err := q.repo.Find(ctx, domain.ProductFilter{
		Sort:  domain.SortNewest,
		Limit: latestProductLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("query latest products: %w", err)
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("encode latest products: %w", err)
	}
	q.cache.Set(ctx, cachekey.LatestProducts, raw)

	return products, nil
}

// Categories returns the distinct category values.
func (q *ProductQuery) Categories(ctx context.Context) ([]string, error) {
	if raw, ok := q.cache.Get(ctx, cachekey.Categories); ok {
		var categories []string
		if err := json.Unmarshal(raw, &categories); err != nil {
			return nil, fmt.Errorf("decode cached categories: %w", err)
		}
		return categories, nil
	}

	categories, err := q.repo.DistinctCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	raw, err := json.Marshal(categories)
	if err != nil {
		return nil, fmt.Errorf("encode categories: %w", err)
	}
	q.cache.Set(ctx, cachekey.Categories, raw)

	return categories, nil
}

// All returns the unfiltered full listing (admin view).
func (q *ProductQuery) All(ctx context.Context) ([]domain.Product, error) {
	if raw, ok := q.cache.Get(ctx, cachekey.AllProducts); ok {
		var products []domain.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, fmt.Errorf("decode cached product listing: %w", err)
		}
		return products, nil
	}

	products, err := q.repo.Find(ctx, domain.ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("query all products: %w", err)
	}

	raw, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("encode product listing: %w", err)
	}
	q.cache.Set(ctx, cachekey.AllProducts, raw)

	return products, nil
}

// ByID returns a single product. A missing id yields ErrProductNotFound
// and leaves the cache unpopulated for that key.
func (q *ProductQuery) ByID(ctx context.Context, id string) (domain.Product, error) {
	key := cachekey.Product(id)

	if raw, ok := q.cache.Get(ctx, key); ok {
		var product domain.Product
		if err := json.Unmarshal(raw, &product); err != nil {
			return domain.Product{}, fmt.Errorf("decode cached product: %w", err)
		}
		return product, nil
	}

	product, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Product{}, fmt.Errorf("query product %s: %w", id, err)
	}
	if product == nil {
		return domain.Product{}, fmt.Errorf("product %s: %w", id, domain.ErrProductNotFound)
	}

	raw, err := json.Marshal(product)
	if err != nil {
		return domain.Product{}, fmt.Errorf("encode product: %w", err)
	}
	q.cache.Set(ctx, key, raw)

	return *product, nil
}
