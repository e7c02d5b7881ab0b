package service

import (
	"context"

	"github.com/rl1809/shop-catalog/internal/core/cachekey"
	"github.com/rl1809/shop-catalog/internal/port"
)

// ChangeDescriptor describes what a mutation touched. It is built by a
// write path and consumed exactly once by the Invalidator. The three
// group flags are independent: one descriptor may trigger several
// groups in the same call.
type ChangeDescriptor struct {
	Product    bool
	Order      bool
	Coupon     bool
	ProductID  string
	ProductIDs []string
	OrderID    string
	UserID     string
}

// Invalidator maps change descriptors to the cache keys that must be
// dropped so the next read rebuilds them from the store.
type Invalidator struct {
	cache port.CacheStore
}

func NewInvalidator(cache port.CacheStore) *Invalidator {
	return &Invalidator{cache: cache}
}

// Invalidate computes the key set for the descriptor and issues one
// bulk delete.
func (i *Invalidator) Invalidate(ctx context.Context, d ChangeDescriptor) {
	var keys []string

	if d.Product {
		keys = append(keys,
			cachekey.LatestProducts,
			cachekey.Categories,
			cachekey.AllProducts,
		)
		// Honor both the single id and the id set when both are present.
		if d.ProductID != "" {
			keys = append(keys, cachekey.Product(d.ProductID))
		}
		for _, id := range d.ProductIDs {
			keys = append(keys, cachekey.Product(id))
		}
	}

	if d.Order {
		// Empty userID/orderID segments are harmless: no read path
		// ever populates such keys.
		keys = append(keys,
			cachekey.AllOrders,
			cachekey.MyOrders(d.UserID),
			cachekey.Order(d.OrderID),
		)
	}

	if d.Coupon {
		keys = append(keys, cachekey.AllCoupons)
	}

	if len(keys) == 0 {
		return
	}
	i.cache.DeleteMany(ctx, keys...)
}
