package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rl1809/shop-catalog/internal/core/domain"
)

// fakeRepo is an in-memory ProductRepository with call counters, used
// to assert cache hit/miss traffic.
type fakeRepo struct {
	mu       sync.Mutex
	products map[string]domain.Product

	findCalls     int
	findByIDCalls int
	distinctCalls int
	countCalls    int
	createCalls   int
	saveCalls     int
	deleteCalls   int

	err error // returned by every call when set
}

func newFakeRepo(products ...domain.Product) *fakeRepo {
	r := &fakeRepo{products: make(map[string]domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeRepo) match(p domain.Product, f domain.ProductFilter) bool {
	if f.NameSearch != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.NameSearch)) {
		return false
	}
	if f.MaxPrice > 0 && p.Price > f.MaxPrice {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	return true
}

func (r *fakeRepo) Find(_ context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.err != nil {
		return nil, r.err
	}

	matched := []domain.Product{}
	for _, p := range r.products {
		if r.match(p, f) {
			matched = append(matched, p)
		}
	}
	switch f.Sort {
	case domain.SortNewest:
		sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	case domain.SortPriceAsc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price < matched[j].Price })
	case domain.SortPriceDesc:
		sort.Slice(matched, func(i, j int) bool { return matched[i].Price > matched[j].Price })
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	}
	if f.Offset > 0 {
		if f.Offset >= len(matched) {
			return []domain.Product{}, nil
		}
		matched = matched[f.Offset:]
	}
	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	return matched, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findByIDCalls++
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeRepo) DistinctCategories(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.distinctCalls++
	if r.err != nil {
		return nil, r.err
	}
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories, nil
}

func (r *fakeRepo) Count(_ context.Context, f domain.ProductFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.countCalls++
	if r.err != nil {
		return 0, r.err
	}
	n := 0
	for _, p := range r.products {
		if r.match(p, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.err != nil {
		return domain.Product{}, r.err
	}
	r.products[p.ID] = p
	return p, nil
}

func (r *fakeRepo) Save(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.err != nil {
		return r.err
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, p domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if r.err != nil {
		return r.err
	}
	delete(r.products, p.ID)
	return nil
}

func (r *fakeRepo) stock(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.products[id].Stock
}
