package domain

// User is the authenticated identity of a session. The storefront ships a
// single hardcoded demo account, so User carries no credentials.
type User struct {
	Name  string
	Email string
}
