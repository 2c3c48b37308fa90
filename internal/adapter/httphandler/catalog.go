package httphandler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopmart/storefront/internal/core/domain"
	"github.com/shopmart/storefront/internal/core/port"
)

// GET v1/products?category=&search=&price_min=&price_max=&rating_min=&sort=
// GET v1/products/featured
// GET v1/products/{id}
// GET v1/categories

type CatalogHandler struct {
	querier port.ProductsQuerier
	events  port.EventPublisher
}

func RegisterCatalog(
	mux *http.ServeMux, querier port.ProductsQuerier, events port.EventPublisher,
) {
	h := CatalogHandler{querier, events}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/featured", h.GetFeatured)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	q, ok := parseProductQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toProducts(h.querier.Query(q)))
}

func (h CatalogHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toProducts(h.querier.Featured()))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.querier.ByID(r.PathValue("id"))
	if !ok {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}

	h.emitViewed(r, p)
	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toCategories(h.querier.Categories()))
}

func (h CatalogHandler) emitViewed(r *http.Request, p domain.Product) {
	if h.events == nil {
		return
	}
	const op = "CatalogHandler.emitViewed"

	e := domain.ClientEvent{
		Type:      domain.EventProductViewed,
		SessionID: sessionID(r),
		ProductID: p.ID,
		At:        time.Now().UTC(),
	}
	if err := h.events.Publish(r.Context(), e); err != nil {
		slog.Warn("failed to publish client event", "op", op, "err", err)
	}
}

func parseProductQuery(
	w http.ResponseWriter, r *http.Request,
) (domain.ProductQuery, bool) {
	params := r.URL.Query()
	q := domain.ProductQuery{
		Category: params.Get("category"),
		Search:   params.Get("search"),
		Sort:     domain.SortKey(params.Get("sort")),
	}

	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"price_min", &q.PriceMin},
		{"price_max", &q.PriceMax},
		{"rating_min", &q.MinRating},
	} {
		raw := params.Get(f.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			http.Error(w, "invalid "+f.name, http.StatusBadRequest)
			return domain.ProductQuery{}, false
		}
		*f.dst = v
	}
	return q, true
}
