// Package cachekey derives the cache key for every cached query shape.
// The invalidator and the query services must agree on these exact
// strings, so all key construction lives here.
package cachekey

const (
	LatestProducts = "latest-products"
	Categories     = "categories"
	AllProducts    = "all-products"
	AllOrders      = "all-orders"
	AllCoupons     = "all-coupons"
)

func Product(id string) string {
	return "product-" + id
}

func Order(orderID string) string {
	return "order-" + orderID
}

func MyOrders(userID string) string {
	return "my-orders-" + userID
}
