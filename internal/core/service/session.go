package service

import "github.com/shopmart/storefront/internal/core/domain"

// Credentials is the single demo account the login mock accepts. This is
// a UI mock, not a security boundary: there is no hashing, no tokens and
// no rate limiting, and any real deployment must replace it with genuine
// credential verification.
type Credentials struct {
	Name     string
	Email    string
	Password string
}

// Session holds the optional authenticated identity for one storefront
// session. It gates profile-only views but enforces no authorization.
type Session struct {
	demo          Credentials
	user          domain.User
	authenticated bool
}

func NewSession(demo Credentials) *Session {
	return &Session{demo: demo}
}

// Login succeeds only for the configured demo pair. A failed attempt
// leaves any installed identity untouched.
func (s *Session) Login(email, password string) bool {
	if email != s.demo.Email || password != s.demo.Password {
		return false
	}
	s.user = domain.User{Name: s.demo.Name, Email: s.demo.Email}
	s.authenticated = true
	return true
}

// Logout clears the session unconditionally.
func (s *Session) Logout() {
	s.user = domain.User{}
	s.authenticated = false
}

func (s *Session) IsAuthenticated() bool {
	return s.authenticated
}

// User returns the authenticated identity, or false for an anonymous
// session.
func (s *Session) User() (domain.User, bool) {
	if !s.authenticated {
		return domain.User{}, false
	}
	return s.user, true
}
