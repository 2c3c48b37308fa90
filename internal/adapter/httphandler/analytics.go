package httphandler

import (
	"net/http"

	"github.com/shopmart/storefront/internal/core/port"
)

// GET v1/analytics/summary

type AnalyticsHandler struct {
	summarizer port.EventsSummarizer
}

func RegisterAnalytics(mux *http.ServeMux, summarizer port.EventsSummarizer) {
	h := AnalyticsHandler{summarizer}
	mux.HandleFunc("GET /v1/analytics/summary", h.GetSummary)
}

func (h AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	s := h.summarizer.Snapshot()

	counts := make(map[string]int, len(s.Counts))
	for k, v := range s.Counts {
		counts[string(k)] = v
	}
	writeJSON(w, http.StatusOK, EventsSummary{
		Counts:          counts,
		OrdersPlaced:    s.OrdersPlaced,
		GrossOrderValue: s.GrossOrderValue,
	})
}
