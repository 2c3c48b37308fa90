package domain

import "errors"

var (
	// ErrNotFound reports an unknown product ID on a cart mutation. Catalog
	// lookups never return it: an absent match is a normal outcome there.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuantity rejects cart mutations that would break the
	// quantity >= 1 invariant. State is left unchanged.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrEmptyCart rejects checkout of an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
)
