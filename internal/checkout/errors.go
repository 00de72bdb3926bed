package checkout

import "errors"

const (
	emptyCartMessage       = "Your cart is empty. Add something tasty first."
	fallbackFailureMessage = "Failed to place order. Please try again."
)

var (
	// ErrEmptyCart rejects a submission before any remote call is made.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")
	// ErrNoOrder is returned when the order service answers without an order.
	ErrNoOrder = errors.New("order service returned no order")
)
