package service

import (
	"context"
	"fmt"

	"github.com/rl1809/shop-catalog/internal/core/domain"
	"github.com/rl1809/shop-catalog/internal/port"
)

// StockReducer decrements product stock for the lines of a placed
// order, one line at a time and in order.
//
// The default mode is a plain read-modify-write per line with no
// protection against concurrent decrements of the same product and no
// rollback of earlier lines when a later line fails. WithAtomicDecrement
// switches to the store's conditional single-round-trip decrement, which
// closes the lost-update window and refuses to drive stock negative.
type StockReducer struct {
	repo   port.ProductRepository
	atomic bool
}

type StockReducerOption func(*StockReducer)

// WithAtomicDecrement routes each line through the store's conditional
// decrement. The repository must implement port.StockDecrementer.
func WithAtomicDecrement() StockReducerOption {
	return func(r *StockReducer) { r.atomic = true }
}

func NewStockReducer(repo port.ProductRepository, opts ...StockReducerOption) *StockReducer {
	r := &StockReducer{repo: repo}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce applies every line sequentially. The first missing product
// aborts the batch; decrements already applied for earlier lines stay
// applied.
func (r *StockReducer) Reduce(ctx context.Context, lines []domain.OrderLine) error {
	if r.atomic {
		return r.reduceAtomic(ctx, lines)
	}

	for _, line := range lines {
		product, err := r.repo.FindByID(ctx, line.ProductID)
		if err != nil {
			return fmt.Errorf("query product %s: %w", line.ProductID, err)
		}
		if product == nil {
			return fmt.Errorf("product %s: %w", line.ProductID, domain.ErrProductNotFound)
		}

		product.Stock -= line.Quantity
		if err := r.repo.Save(ctx, *product); err != nil {
			return fmt.Errorf("save product %s: %w", line.ProductID, err)
		}
	}
	return nil
}

func (r *StockReducer) reduceAtomic(ctx context.Context, lines []domain.OrderLine) error {
	dec, ok := r.repo.(port.StockDecrementer)
	if !ok {
		return fmt.Errorf("repository does not support atomic decrement")
	}

	for _, line := range lines {
		applied, err := dec.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return fmt.Errorf("decrement product %s: %w", line.ProductID, err)
		}
		if !applied {
			product, err := r.repo.FindByID(ctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("query product %s: %w", line.ProductID, err)
			}
			if product == nil {
				return fmt.Errorf("product %s: %w", line.ProductID, domain.ErrProductNotFound)
			}
			return fmt.Errorf("product %s: %w", line.ProductID, domain.ErrInsufficientStock)
		}
	}
	return nil
}
