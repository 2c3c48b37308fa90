package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/service"
)

func testCheckoutConfig() service.CheckoutConfig {
	return service.CheckoutConfig{
		ProcessingDelay: time.Millisecond,
		FreeShippingMin: 99,
		ShippingFee:     9.99,
	}
}

func TestPlaceOrder(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		checkout := service.NewCheckout(testCheckoutConfig(), nil)
		cart := service.NewCart("s1", nil)

		_, err := checkout.PlaceOrder(t.Context(), cart, domain.OrderDetails{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyCart)
	})

	t.Run("SnapshotsAndClearsCart", func(t *testing.T) {
		pub := &capturingPublisher{}
		checkout := service.NewCheckout(testCheckoutConfig(), pub)
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 2))

		details := domain.OrderDetails{
			FirstName: "Demo", LastName: "User",
			Email: "user@gmail.com", Payment: domain.PaymentCard,
		}
		order, err := checkout.PlaceOrder(t.Context(), cart, details)
		require.NoError(t, err)

		assert.NotEmpty(t, order.ID)
		assert.False(t, order.PlacedAt.IsZero())
		require.Len(t, order.Lines, 1)
		assert.Equal(t, 2, order.Lines[0].Quantity)
		assert.InDelta(t, 200, order.Subtotal, 1e-9)
		assert.InDelta(t, 40, order.Savings, 1e-9)
		assert.Zero(t, order.Shipping) // over the free-shipping threshold
		assert.InDelta(t, 200, order.Total, 1e-9)
		assert.Equal(t, details, order.Details)

		assert.Zero(t, cart.Len())

		require.Len(t, pub.events, 1)
		assert.Equal(t, domain.EventOrderPlaced, pub.events[0].Type)
		assert.InDelta(t, order.Total, pub.events[0].Value, 1e-9)
	})

	t.Run("ShippingFeeBelowThreshold", func(t *testing.T) {
		checkout := service.NewCheckout(testCheckoutConfig(), nil)
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productB, 1)) // 50

		order, err := checkout.PlaceOrder(t.Context(), cart, domain.OrderDetails{})
		require.NoError(t, err)
		assert.InDelta(t, 9.99, order.Shipping, 1e-9)
		assert.InDelta(t, 59.99, order.Total, 1e-9)
	})

	t.Run("CancellationLeavesCartIntact", func(t *testing.T) {
		cfg := testCheckoutConfig()
		cfg.ProcessingDelay = time.Minute
		pub := &capturingPublisher{}
		checkout := service.NewCheckout(cfg, pub)
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 1))

		ctx, cancel := context.WithTimeout(t.Context(), 5*time.Millisecond)
		defer cancel()

		_, err := checkout.PlaceOrder(ctx, cart, domain.OrderDetails{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		assert.Equal(t, 1, cart.Len())
		assert.Empty(t, pub.events)
	})

	t.Run("AlreadyCancelledContext", func(t *testing.T) {
		checkout := service.NewCheckout(testCheckoutConfig(), nil)
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 1))

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := checkout.PlaceOrder(ctx, cart, domain.OrderDetails{})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, cart.Len())
	})
}
