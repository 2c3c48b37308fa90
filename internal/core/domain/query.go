package domain

// SortKey selects the ordering of a catalog query result.
type SortKey string

const (
	SortPopularity SortKey = "popularity"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortDiscount   SortKey = "discount"
)

// ProductQuery describes one run of the catalog query engine. Zero values
// mean "not set": empty Category and Search skip those filters, PriceMax 0
// means an unbounded upper price, MinRating 0 skips the rating filter and
// an empty Sort falls back to SortPopularity.
type ProductQuery struct {
	Category  string
	Search    string
	PriceMin  float64
	PriceMax  float64
	MinRating float64
	Sort      SortKey
}

// InPriceRange reports whether price falls inside the inclusive range.
func (q ProductQuery) InPriceRange(price float64) bool {
	if price < q.PriceMin {
		return false
	}
	if q.PriceMax > 0 && price > q.PriceMax {
		return false
	}
	return true
}
