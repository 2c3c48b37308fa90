package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

var _ port.OrderPlacer = (*Checkout)(nil)

// CheckoutConfig tunes the checkout flow. ProcessingDelay simulates the
// payment round trip; orders at or above FreeShippingMin ship for free,
// the rest pay ShippingFee.
type CheckoutConfig struct {
	ProcessingDelay time.Duration
	FreeShippingMin float64
	ShippingFee     float64
}

// Checkout turns a cart into an order. The simulated processing delay is
// cancellable: navigating away cancels the context and no pending
// completion mutates the cart afterwards.
type Checkout struct {
	cfg    CheckoutConfig
	events port.EventPublisher
}

func NewCheckout(cfg CheckoutConfig, events port.EventPublisher) Checkout {
	return Checkout{cfg: cfg, events: events}
}

// PlaceOrder waits out the processing delay, snapshots the cart into an
// order and clears the cart. If ctx is done before the delay elapses the
// cart is left exactly as it was.
func (c Checkout) PlaceOrder(
	ctx context.Context, cart port.CartState, d domain.OrderDetails,
) (domain.Order, error) {
	const op = "Checkout.PlaceOrder"

	if err := ctx.Err(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if cart.Len() == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	timer := time.NewTimer(c.cfg.ProcessingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return domain.Order{}, fmt.Errorf("%s: %w", op, ctx.Err())
	case <-timer.C:
	}

	subtotal := cart.Subtotal()
	shipping := c.cfg.ShippingFee
	if subtotal >= c.cfg.FreeShippingMin {
		shipping = 0
	}

	order := domain.Order{
		ID:       uuid.NewString(),
		PlacedAt: time.Now().UTC(),
		Lines:    cart.Lines(),
		Details:  d,
		Subtotal: subtotal,
		Savings:  cart.TotalSavings(),
		Shipping: shipping,
		Total:    subtotal + shipping,
	}

	cart.Clear(ctx)
	c.emitPlaced(ctx, order)

	slog.Info("order placed",
		"op", op, "orderID", order.ID, "total", order.Total)
	return order, nil
}

func (c Checkout) emitPlaced(ctx context.Context, order domain.Order) {
	if c.events == nil {
		return
	}
	const op = "Checkout.emitPlaced"

	e := domain.ClientEvent{
		Type:     domain.EventOrderPlaced,
		Quantity: len(order.Lines),
		Value:    order.Total,
		At:       order.PlacedAt,
	}
	if err := c.events.Publish(ctx, e); err != nil {
		slog.Warn("failed to publish client event",
			"op", op, "orderID", order.ID, "err", err)
	}
}
