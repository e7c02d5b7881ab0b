package service

import (
	"context"

	"github.com/rl1809/shop-catalog/internal/core/domain"
)

// OrderPlacer runs the order-placement side effects this module owns:
// reduce stock for every line, then invalidate the product and order
// views in one descriptor. Order persistence itself lives elsewhere.
type OrderPlacer struct {
	reducer     *StockReducer
	invalidator *Invalidator
}

func NewOrderPlacer(reducer *StockReducer, invalidator *Invalidator) *OrderPlacer {
	return &OrderPlacer{reducer: reducer, invalidator: invalidator}
}

// PlaceOrder decrements stock for all lines and drops the cache keys a
// new order makes stale. Stock already decremented for earlier lines is
// not restored when a later line fails.
func (p *OrderPlacer) PlaceOrder(ctx context.Context, userID string, lines []domain.OrderLine) error {
	if err := p.reducer.Reduce(ctx, lines); err != nil {
		return err
	}

	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	p.invalidator.Invalidate(ctx, ChangeDescriptor{
		Product:    true,
		ProductIDs: ids,
		Order:      true,
		UserID:     userID,
	})

	return nil
}
