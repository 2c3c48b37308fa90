package httphandler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

// POST v1/checkout JSON [shipping details + payment method]

type CheckoutHandler struct {
	reg    *Registry
	placer port.OrderPlacer
}

func RegisterCheckout(mux *http.ServeMux, reg *Registry, placer port.OrderPlacer) {
	h := CheckoutHandler{reg, placer}
	mux.HandleFunc("POST /v1/checkout", h.PlaceOrder)
}

func (h CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PlaceOrder"
	log := slog.With("op", op)

	var body struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Address   string `json:"address"`
		City      string `json:"city"`
		ZipCode   string `json:"zip_code"`
		Payment   string `json:"payment_method"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	details := domain.OrderDetails{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Address:   body.Address,
		City:      body.City,
		ZipCode:   body.ZipCode,
		Payment:   domain.PaymentMethod(body.Payment),
	}

	cart := h.reg.state(sessionID(r)).cart

	// The request context carries the cancellation: when the client
	// navigates away, the pending order is abandoned and the cart keeps
	// its lines.
	order, err := h.placer.PlaceOrder(r.Context(), cart, details)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		case errors.Is(err, r.Context().Err()):
			log.Info("checkout abandoned", "err", err)
		default:
			log.Error("failed to place order", "err", err)
			http.Error(w, "failed to place order", http.StatusServiceUnavailable)
		}
		return
	}

	writeJSON(w, http.StatusCreated, toOrder(order))
}
