package domain

import "time"

// CartLine aggregates one product inside the cart. The cart holds at most
// one line per product ID and Quantity is always >= 1.
type CartLine struct {
	Product  Product
	Quantity int
}

// Subtotal is the line price, quantity included.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Savings is the line discount amount, quantity included.
func (l CartLine) Savings() float64 {
	return l.Product.Savings() * float64(l.Quantity)
}

// PaymentMethod is recorded with the order, never charged.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

// OrderDetails is the buyer-supplied part of a checkout submission.
type OrderDetails struct {
	FirstName string
	LastName  string
	Email     string
	Address   string
	City      string
	ZipCode   string
	Payment   PaymentMethod
}

// Order is the completed checkout snapshot. Lines are copied out of the
// cart before it is cleared, so the order stays intact afterwards.
type Order struct {
	ID       string
	PlacedAt time.Time
	Lines    []CartLine
	Details  OrderDetails
	Subtotal float64
	Savings  float64
	Shipping float64
	Total    float64
}
