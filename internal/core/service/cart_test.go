package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/service"
)

type capturingPublisher struct {
	events []domain.ClientEvent
}

func (p *capturingPublisher) Publish(
	_ context.Context, e domain.ClientEvent,
) error {
	p.events = append(p.events, e)
	return nil
}

var (
	productA = domain.Product{
		ID: "a", Title: "Alpha", Price: 100, OriginalPrice: 120,
		Category: "x", Images: []string{"a.jpg"}, InStock: true,
	}
	productB = domain.Product{
		ID: "b", Title: "Beta", Price: 50, OriginalPrice: 50,
		Category: "x", Images: []string{"b.jpg"}, InStock: true,
	}
	// source data is not always self-consistent: price above original
	productOdd = domain.Product{
		ID: "odd", Title: "Odd", Price: 80, OriginalPrice: 60,
		Category: "x", Images: []string{"odd.jpg"}, InStock: true,
	}
)

func TestCartAdd(t *testing.T) {
	t.Run("MergesIntoSingleLine", func(t *testing.T) {
		cart := service.NewCart("s1", nil)

		require.NoError(t, cart.Add(t.Context(), productA, 2))
		require.NoError(t, cart.Add(t.Context(), productA, 3))

		require.Equal(t, 1, cart.Len())
		lines := cart.Lines()
		assert.Equal(t, "a", lines[0].Product.ID)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("DefaultsAreFreshPerRead", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		assert.Zero(t, cart.Subtotal())
		assert.Zero(t, cart.TotalItems())

		require.NoError(t, cart.Add(t.Context(), productA, 2))
		assert.InDelta(t, 200, cart.Subtotal(), 1e-9)
		assert.Equal(t, 2, cart.TotalItems())
	})

	t.Run("RejectsNonPositiveQuantity", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		err := cart.Add(t.Context(), productA, 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Zero(t, cart.Len())
	})

	t.Run("KeepsInsertionOrder", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 1))
		require.NoError(t, cart.Add(t.Context(), productB, 1))
		require.NoError(t, cart.Add(t.Context(), productA, 1))

		lines := cart.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "a", lines[0].Product.ID)
		assert.Equal(t, "b", lines[1].Product.ID)
	})

	t.Run("PublishesEvent", func(t *testing.T) {
		pub := &capturingPublisher{}
		cart := service.NewCart("s1", pub)
		require.NoError(t, cart.Add(t.Context(), productA, 2))

		require.Len(t, pub.events, 1)
		e := pub.events[0]
		assert.Equal(t, domain.EventCartItemAdded, e.Type)
		assert.Equal(t, "s1", e.SessionID)
		assert.Equal(t, "a", e.ProductID)
		assert.Equal(t, 2, e.Quantity)
		assert.False(t, e.At.IsZero())
	})
}

func TestCartRemove(t *testing.T) {
	t.Run("UnknownIDIsNoOp", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 1))

		cart.Remove(t.Context(), "unknown")

		assert.Equal(t, 1, cart.Len())
		assert.Equal(t, 1, cart.TotalItems())
	})

	t.Run("RemovesLineAndReindexes", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 1))
		require.NoError(t, cart.Add(t.Context(), productB, 2))

		cart.Remove(t.Context(), "a")

		require.Equal(t, 1, cart.Len())
		assert.Equal(t, "b", cart.Lines()[0].Product.ID)

		// the survivor must still be addressable after reindexing
		require.NoError(t, cart.SetQuantity("b", 7))
		assert.Equal(t, 7, cart.Lines()[0].Quantity)
	})
}

func TestCartSetQuantity(t *testing.T) {
	t.Run("ZeroIsRejectedStateUnchanged", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 3))

		err := cart.SetQuantity("a", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Equal(t, 3, cart.Lines()[0].Quantity)
	})

	t.Run("UnknownID", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		err := cart.SetQuantity("nope", 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Overwrites", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 3))
		require.NoError(t, cart.SetQuantity("a", 1))
		assert.Equal(t, 1, cart.TotalItems())
	})
}

func TestCartDerivedTotals(t *testing.T) {
	t.Run("SubtotalSavingsItems", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 2)) // 200, saves 40
		require.NoError(t, cart.Add(t.Context(), productB, 3)) // 150, saves 0

		assert.InDelta(t, 350, cart.Subtotal(), 1e-9)
		assert.InDelta(t, 40, cart.TotalSavings(), 1e-9)
		assert.Equal(t, 5, cart.TotalItems())
		assert.Equal(t, 2, cart.Len())
	})

	t.Run("NegativeSavingsClampToZero", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productOdd, 2))

		assert.InDelta(t, 160, cart.Subtotal(), 1e-9)
		assert.Zero(t, cart.TotalSavings())
	})

	t.Run("ReadAfterMutationIsFresh", func(t *testing.T) {
		cart := service.NewCart("s1", nil)
		require.NoError(t, cart.Add(t.Context(), productA, 1))
		assert.InDelta(t, 100, cart.Subtotal(), 1e-9)

		require.NoError(t, cart.Add(t.Context(), productA, 1))
		assert.InDelta(t, 200, cart.Subtotal(), 1e-9)
	})
}

func TestCartClear(t *testing.T) {
	pub := &capturingPublisher{}
	cart := service.NewCart("s1", pub)
	require.NoError(t, cart.Add(t.Context(), productA, 1))
	require.NoError(t, cart.Add(t.Context(), productB, 1))

	cart.Clear(t.Context())

	assert.Zero(t, cart.Len())
	assert.Zero(t, cart.Subtotal())
	last := pub.events[len(pub.events)-1]
	assert.Equal(t, domain.EventCartCleared, last.Type)

	// clearing an already-empty cart emits nothing
	n := len(pub.events)
	cart.Clear(t.Context())
	assert.Len(t, pub.events, n)
}
