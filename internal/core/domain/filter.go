package domain

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortNewest    SortOrder = "newest"
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
)

// ProductFilter is the query shape the repository executes. Zero values
// mean "no constraint"; Limit == 0 means unbounded.
type ProductFilter struct {
	NameSearch string // case-insensitive substring match on name
	Category   string // exact match
	MaxPrice   int64  // price <= MaxPrice when > 0
	Sort       SortOrder
	Limit      int
	Offset     int
}
