package httphandler

import (
	"net/http"

	"github.com/shopmart/storefront/internal/core/port"
)

// GET    v1/wishlist
// POST   v1/wishlist/toggle JSON {"product_id" string}
// DELETE v1/wishlist/{id}

type WishlistHandler struct {
	reg     *Registry
	querier port.ProductsQuerier
}

func RegisterWishlist(
	mux *http.ServeMux, reg *Registry, querier port.ProductsQuerier,
) {
	h := WishlistHandler{reg, querier}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.Toggle)
	mux.HandleFunc("DELETE /v1/wishlist/{id}", h.Remove)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	wl := h.reg.state(sessionID(r)).wishlist
	writeJSON(w, http.StatusOK, WishlistView{
		Items: toProducts(wl.Items()),
		Count: wl.Count(),
	})
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"product_id"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}

	p, ok := h.querier.ByID(body.ProductID)
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	wl := h.reg.state(sessionID(r)).wishlist
	present := wl.Toggle(r.Context(), p)
	writeJSON(w, http.StatusOK, struct {
		InWishlist bool `json:"in_wishlist"`
		Count      int  `json:"count"`
	}{present, wl.Count()})
}

func (h WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	wl := h.reg.state(sessionID(r)).wishlist
	wl.Remove(r.Context(), r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}
