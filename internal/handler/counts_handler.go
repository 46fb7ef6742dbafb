// internal/handler/counts_handler.go
package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/controller"
	"github.com/unclebandit/leadreach-webclient/internal/service"
)

// CountsHandler serves the per-status business counts as JSON so the detail
// page can refresh them without a full reload.
type CountsHandler struct {
	Businesses api.BusinessAPIInterface
}

// GetCampaignCounts re-derives the counts from a fresh business fetch; it
// never trusts a cached aggregate.
func (h *CountsHandler) GetCampaignCounts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session := controller.CurrentSession(r)

	businesses, err := h.Businesses.List(r.Context(), session.AccessToken, id)
	if err != nil {
		log.Println("⚠️ failed to fetch businesses for counts:", err)
		http.Error(w, "failed to fetch businesses: "+err.Error(), http.StatusBadGateway)
		return
	}

	counts := service.CountByStatus(businesses)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{
		"total":    len(businesses),
		"draft":    counts.Draft,
		"approved": counts.Approved,
		"sent":     counts.Sent,
		"replied":  counts.Replied,
	})
}
