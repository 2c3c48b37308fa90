package httphandler

import (
	"errors"
	"net/http"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
	"github.com/shopmart/storefront/internal/core/service"
)

// GET    v1/cart
// POST   v1/cart/items JSON {"product_id" string, "quantity" int}
// PATCH  v1/cart/items/{id} JSON {"quantity" int}
// DELETE v1/cart/items/{id}
// DELETE v1/cart

type CartHandler struct {
	reg      *Registry
	querier  port.ProductsQuerier
	shipping service.CheckoutConfig
}

func RegisterCart(
	mux *http.ServeMux,
	reg *Registry,
	querier port.ProductsQuerier,
	shipping service.CheckoutConfig,
) {
	h := CartHandler{reg, querier, shipping}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PATCH /v1/cart/items/{id}", h.SetQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.ClearCart)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart := h.reg.state(sessionID(r)).cart
	writeJSON(w, http.StatusOK, h.toView(cart))
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	p, ok := h.querier.ByID(body.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	cart := h.reg.state(sessionID(r)).cart
	if err := cart.Add(r.Context(), p, body.Quantity); err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, h.toView(cart))
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Quantity int `json:"quantity"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	cart := h.reg.state(sessionID(r)).cart
	err := cart.SetQuantity(r.PathValue("id"), body.Quantity)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "line not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrInvalidQuantity):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, http.StatusOK, h.toView(cart))
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	cart := h.reg.state(sessionID(r)).cart
	cart.Remove(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	cart := h.reg.state(sessionID(r)).cart
	cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) toView(cart *service.Cart) CartView {
	subtotal := cart.Subtotal()

	var shipping float64
	if cart.Len() > 0 && subtotal < h.shipping.FreeShippingMin {
		shipping = h.shipping.ShippingFee
	}

	return CartView{
		Lines:      toCartLines(cart.Lines()),
		TotalItems: cart.TotalItems(),
		Subtotal:   subtotal,
		Savings:    cart.TotalSavings(),
		Shipping:   shipping,
		Total:      subtotal + shipping,
	}
}
