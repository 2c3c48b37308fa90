package domain

type (
	// Product is an immutable catalog record. Products are created once at
	// startup by the catalog source and never mutated afterwards.
	Product struct {
		ID            string
		Title         string
		Price         float64
		OriginalPrice float64
		Discount      int
		Rating        float64
		ReviewCount   int
		Description   string
		Category      string
		Images        []string
		InStock       bool
		Featured      bool
	}

	// Category describes a catalog section. ProductCount is denormalized
	// display metadata carried over from the source data; it may drift from
	// the actual number of products in the category and must not be trusted
	// for anything but display.
	Category struct {
		ID           string
		Name         string
		Slug         string
		Image        string
		ProductCount int
	}
)

// Savings is the per-unit discount amount, never negative even when the
// source data carries a price above the original price.
func (p Product) Savings() float64 {
	if d := p.OriginalPrice - p.Price; d > 0 {
		return d
	}
	return 0
}
