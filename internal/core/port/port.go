package port

import (
	"context"

	"github.com/shopmart/storefront/internal/core/domain"
)

// CatalogSource loads the static catalog records. Implemented by the
// embedded-fixture adapter; called once at startup.
type CatalogSource interface {
	Load(context.Context) ([]domain.Category, []domain.Product, error)
}

// EventPublisher emits storefront client events. Publishing is best
// effort: callers log failures and carry on.
type EventPublisher interface {
	Publish(context.Context, domain.ClientEvent) error
}

// ProductsQuerier is the read surface of the catalog.
type ProductsQuerier interface {
	Query(domain.ProductQuery) []domain.Product
	ByID(id string) (domain.Product, bool)
	ByCategory(slug string) []domain.Product
	Search(query string) []domain.Product
	Featured() []domain.Product
	Categories() []domain.Category
	CategoryBySlug(slug string) (domain.Category, bool)
}

// CartState is the cart as seen by checkout: derived totals, the line
// snapshot and the single mutation checkout performs.
type CartState interface {
	Lines() []domain.CartLine
	Len() int
	Subtotal() float64
	TotalSavings() float64
	TotalItems() int
	Clear(context.Context)
}

// OrderPlacer runs the checkout flow over a cart.
type OrderPlacer interface {
	PlaceOrder(context.Context, CartState, domain.OrderDetails) (domain.Order, error)
}

// EventsSummarizer exposes the aggregate view of recorded client events.
type EventsSummarizer interface {
	Snapshot() domain.EventsSummary
}
