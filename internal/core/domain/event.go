package domain

import "time"

// ClientEventType enumerates the storefront interactions published to the
// client-events stream.
type ClientEventType string

const (
	EventProductViewed   ClientEventType = "product_viewed"
	EventCartItemAdded   ClientEventType = "cart_item_added"
	EventCartItemRemoved ClientEventType = "cart_item_removed"
	EventCartCleared     ClientEventType = "cart_cleared"
	EventWishlistToggled ClientEventType = "wishlist_toggled"
	EventOrderPlaced     ClientEventType = "order_placed"
)

// ClientEvent is one storefront interaction. Quantity and Value are zero
// when they carry no meaning for the event type.
type ClientEvent struct {
	Type      ClientEventType
	SessionID string
	ProductID string
	Quantity  int
	Value     float64
	At        time.Time
}

// EventsSummary is the aggregate view maintained by the client-events
// recorder.
type EventsSummary struct {
	Counts          map[ClientEventType]int
	OrdersPlaced    int
	GrossOrderValue float64
}
