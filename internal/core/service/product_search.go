package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rl1809/shop-catalog/internal/core/domain"
	"github.com/rl1809/shop-catalog/internal/port"
)

// SearchRequest is the parametrized search input. Zero values disable
// the corresponding filter axis.
type SearchRequest struct {
	Search   string
	Category string
	MaxPrice int64
	Sort     domain.SortOrder // price ascending or descending
	Page     int              // 1-based, defaults to 1
}

// SearchResult is one page of matches plus the total page count.
type SearchResult struct {
	Products   []domain.Product `json:"products"`
	TotalPages int              `json:"total_pages"`
}

// ProductSearch runs the paginated product search. It bypasses the
// cache entirely: the filter space spans four independent axes and is
// not worth keying.
type ProductSearch struct {
	repo     port.ProductRepository
	pageSize int
}

func NewProductSearch(repo port.ProductRepository, pageSize int) *ProductSearch {
	return &ProductSearch{repo: repo, pageSize: pageSize}
}

// Search fetches the requested page and the total matching count
// concurrently against the store.
func (s *ProductSearch) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}

	filter := domain.ProductFilter{
		NameSearch: req.Search,
		Category:   req.Category,
		MaxPrice:   req.MaxPrice,
		Sort:       req.Sort,
		Limit:      s.pageSize,
		Offset:     (page - 1) * s.pageSize,
	}

	var (
		products []domain.Product
		matched  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.repo.Find(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		matched, err = s.repo.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return SearchResult{}, fmt.Errorf("search products: %w", err)
	}

	totalPages := (matched + s.pageSize - 1) / s.pageSize

	return SearchResult{Products: products, TotalPages: totalPages}, nil
}
