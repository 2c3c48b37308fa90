package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

// Wishlist is the set of saved products for one session, listed in
// insertion order. Like Cart it has a single owner and is not safe for
// concurrent use.
type Wishlist struct {
	sessionID string
	items     []domain.Product
	index     map[string]int
	events    port.EventPublisher
}

func NewWishlist(sessionID string, events port.EventPublisher) *Wishlist {
	return &Wishlist{
		sessionID: sessionID,
		index:     make(map[string]int),
		events:    events,
	}
}

// Toggle inserts p if absent and removes it if present, returning the
// resulting membership. Calling it twice with the same product restores
// the prior state.
func (w *Wishlist) Toggle(ctx context.Context, p domain.Product) bool {
	var present bool
	if _, ok := w.index[p.ID]; ok {
		w.delete(p.ID)
	} else {
		w.index[p.ID] = len(w.items)
		w.items = append(w.items, p)
		present = true
	}

	w.emit(ctx, domain.ClientEvent{
		Type:      domain.EventWishlistToggled,
		ProductID: p.ID,
	})
	return present
}

func (w *Wishlist) Contains(productID string) bool {
	_, ok := w.index[productID]
	return ok
}

// Remove drops the product if present; an unknown ID is a no-op.
func (w *Wishlist) Remove(ctx context.Context, productID string) {
	if _, ok := w.index[productID]; !ok {
		return
	}
	w.delete(productID)

	w.emit(ctx, domain.ClientEvent{
		Type:      domain.EventWishlistToggled,
		ProductID: productID,
	})
}

func (w *Wishlist) Count() int {
	return len(w.items)
}

// Items returns a copy of the saved products in insertion order.
func (w *Wishlist) Items() []domain.Product {
	res := make([]domain.Product, len(w.items))
	copy(res, w.items)
	return res
}

func (w *Wishlist) delete(productID string) {
	i := w.index[productID]
	w.items = append(w.items[:i], w.items[i+1:]...)
	delete(w.index, productID)
	for j := i; j < len(w.items); j++ {
		w.index[w.items[j].ID] = j
	}
}

func (w *Wishlist) emit(ctx context.Context, e domain.ClientEvent) {
	if w.events == nil {
		return
	}
	const op = "Wishlist.emit"

	e.SessionID = w.sessionID
	e.At = time.Now().UTC()
	if err := w.events.Publish(ctx, e); err != nil {
		slog.Warn("failed to publish client event",
			"op", op, "eventType", e.Type, "err", err)
	}
}
