package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rl1809/shop-catalog/internal/core/domain"
)

func TestSearchPagination(t *testing.T) {
	repo := newFakeRepo()
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("p%02d", i)
		repo.products[id] = productAt(id, fmt.Sprintf("foo %d", i), "misc", 1000, 1, time.Now())
	}

	s := NewProductSearch(repo, 8)
	result, err := s.Search(context.Background(), SearchRequest{Search: "foo", Page: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 8 {
		t.Errorf("expected 8 products on page 1, got %d", len(result.Products))
	}
	if result.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", result.TotalPages)
	}

	result, err = s.Search(context.Background(), SearchRequest{Search: "foo", Page: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 2 {
		t.Errorf("expected 2 products on page 2, got %d", len(result.Products))
	}
}

func TestSearchDefaultsToPageOne(t *testing.T) {
	repo := newFakeRepo(productAt("p1", "Keyboard", "electronics", 4500, 10, time.Now()))
	s := NewProductSearch(repo, 8)

	result, err := s.Search(context.Background(), SearchRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 1 || result.TotalPages != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	repo := newFakeRepo(
		productAt("p1", "Mechanical Keyboard", "electronics", 4500, 10, time.Now()),
		productAt("p2", "Mouse", "electronics", 2500, 10, time.Now()),
	)
	s := NewProductSearch(repo, 8)

	result, err := s.Search(context.Background(), SearchRequest{Search: "KEYBOARD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 1 || result.Products[0].ID != "p1" {
		t.Errorf("unexpected matches: %+v", result.Products)
	}
}

func TestSearchFilterAxes(t *testing.T) {
	repo := newFakeRepo(
		productAt("p1", "Keyboard", "electronics", 4500, 10, time.Now()),
		productAt("p2", "Chair", "furniture", 15000, 10, time.Now()),
		productAt("p3", "Mouse", "electronics", 2500, 10, time.Now()),
	)
	s := NewProductSearch(repo, 8)
	ctx := context.Background()

	result, err := s.Search(ctx, SearchRequest{Category: "electronics"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 2 {
		t.Errorf("expected 2 electronics, got %d", len(result.Products))
	}

	result, err = s.Search(ctx, SearchRequest{MaxPrice: 3000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Products) != 1 || result.Products[0].ID != "p3" {
		t.Errorf("expected only the mouse under 3000, got %+v", result.Products)
	}
}

func TestSearchSortByPrice(t *testing.T) {
	repo := newFakeRepo(
		productAt("p1", "Keyboard", "electronics", 4500, 10, time.Now()),
		productAt("p2", "Chair", "furniture", 15000, 10, time.Now()),
		productAt("p3", "Mouse", "electronics", 2500, 10, time.Now()),
	)
	s := NewProductSearch(repo, 8)
	ctx := context.Background()

	result, err := s.Search(ctx, SearchRequest{Sort: domain.SortPriceAsc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Products[0].ID != "p3" || result.Products[2].ID != "p2" {
		t.Errorf("expected ascending price order, got %+v", result.Products)
	}

	result, err = s.Search(ctx, SearchRequest{Sort: domain.SortPriceDesc})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Products[0].ID != "p2" {
		t.Errorf("expected descending price order, got %+v", result.Products)
	}
}

func TestSearchRunsPageAndCountQueries(t *testing.T) {
	repo := newFakeRepo(productAt("p1", "Keyboard", "electronics", 4500, 10, time.Now()))
	s := NewProductSearch(repo, 8)

	if _, err := s.Search(context.Background(), SearchRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.findCalls != 1 || repo.countCalls != 1 {
		t.Errorf("expected one find and one count, got %d/%d", repo.findCalls, repo.countCalls)
	}
}
