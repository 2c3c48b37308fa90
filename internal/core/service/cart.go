package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

var _ port.CartState = (*Cart)(nil)

// Cart is the mutable collection of cart lines for one session. It holds
// at most one line per product ID and keeps lines in insertion order.
// Totals are derived on every read, never cached. A Cart has a single
// owner and is not safe for concurrent use.
type Cart struct {
	sessionID string
	lines     []domain.CartLine
	index     map[string]int
	events    port.EventPublisher
}

// NewCart creates an empty cart. The publisher may be nil, in which case
// no client events are emitted.
func NewCart(sessionID string, events port.EventPublisher) *Cart {
	return &Cart{
		sessionID: sessionID,
		index:     make(map[string]int),
		events:    events,
	}
}

// Add merges qty into the existing line for p or appends a new one.
func (c *Cart) Add(ctx context.Context, p domain.Product, qty int) error {
	if qty < 1 {
		return domain.ErrInvalidQuantity
	}

	if i, ok := c.index[p.ID]; ok {
		c.lines[i].Quantity += qty
	} else {
		c.index[p.ID] = len(c.lines)
		c.lines = append(c.lines, domain.CartLine{Product: p, Quantity: qty})
	}

	c.emit(ctx, domain.ClientEvent{
		Type:      domain.EventCartItemAdded,
		ProductID: p.ID,
		Quantity:  qty,
		Value:     p.Price * float64(qty),
	})
	return nil
}

// Remove deletes the line if present; an unknown ID is a no-op.
func (c *Cart) Remove(ctx context.Context, productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}

	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].Product.ID] = j
	}

	c.emit(ctx, domain.ClientEvent{
		Type:      domain.EventCartItemRemoved,
		ProductID: productID,
	})
}

// SetQuantity overwrites the line's quantity. A quantity below 1 is
// rejected with ErrInvalidQuantity and leaves the line untouched; an
// unknown ID yields ErrNotFound.
func (c *Cart) SetQuantity(productID string, qty int) error {
	if qty < 1 {
		return domain.ErrInvalidQuantity
	}
	i, ok := c.index[productID]
	if !ok {
		return domain.ErrNotFound
	}
	c.lines[i].Quantity = qty
	return nil
}

func (c *Cart) Clear(ctx context.Context) {
	if len(c.lines) == 0 {
		return
	}
	c.lines = nil
	c.index = make(map[string]int)

	c.emit(ctx, domain.ClientEvent{Type: domain.EventCartCleared})
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []domain.CartLine {
	res := make([]domain.CartLine, len(c.lines))
	copy(res, c.lines)
	return res
}

// Len is the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Subtotal()
	}
	return sum
}

func (c *Cart) TotalSavings() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Savings()
	}
	return sum
}

// TotalItems counts units across all lines, not distinct lines.
func (c *Cart) TotalItems() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) emit(ctx context.Context, e domain.ClientEvent) {
	if c.events == nil {
		return
	}
	const op = "Cart.emit"

	e.SessionID = c.sessionID
	e.At = time.Now().UTC()
	if err := c.events.Publish(ctx, e); err != nil {
		slog.Warn("failed to publish client event",
			"op", op, "eventType", e.Type, "err", err)
	}
}
