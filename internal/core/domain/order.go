package domain

// OrderLine is one line of a placed order. Lines feed the stock reducer;
// they are not persisted by this module.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
