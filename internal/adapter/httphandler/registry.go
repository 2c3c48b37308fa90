package httphandler

import (
	"sync"

	"github.com/shopmart/storefront/internal/core/port"
	"github.com/shopmart/storefront/internal/core/service"
)

// sessionState bundles the per-session state containers. Each bundle is
// owned by its session; the registry mutex only guards lookup and
// creation, all mutation goes through the containers' own operations.
type sessionState struct {
	cart     *service.Cart
	wishlist *service.Wishlist
	session  *service.Session
}

// Registry maps session IDs to their state bundles. State lives for the
// lifetime of the process, matching the single-session scope of the
// storefront: there is no persistence.
type Registry struct {
	mu     sync.Mutex
	states map[string]*sessionState

	events port.EventPublisher
	demo   service.Credentials
}

func NewRegistry(events port.EventPublisher, demo service.Credentials) *Registry {
	return &Registry{
		states: make(map[string]*sessionState),
		events: events,
		demo:   demo,
	}
}

func (reg *Registry) state(sid string) *sessionState {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	st, ok := reg.states[sid]
	if !ok {
		st = &sessionState{
			cart:     service.NewCart(sid, reg.events),
			wishlist: service.NewWishlist(sid, reg.events),
			session:  service.NewSession(reg.demo),
		}
		reg.states[sid] = st
	}
	return st
}
