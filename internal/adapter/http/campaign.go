package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"campsim/internal/core/domain"
	"campsim/internal/export"
)

// handleCreateCampaign validates and stores a new campaign. The request
// body is decoded into a domain.Campaign; the server assigns the id.
// Validation failures produce HTTP 400, success returns the stored
// campaign with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var c domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	created, err := h.campaigns.CreateCampaign(r.Context(), c)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

// handleListCampaigns returns all stored campaigns, newest first.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign by its {id} path parameter.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.campaigns.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleDeleteCampaign removes a campaign and its results.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.campaigns.DeleteCampaign(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleRunSimulation runs the forecasting engine for a stored campaign
// and returns the persisted results bundle.
func (h *Handler) handleRunSimulation(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.campaigns.RunSimulation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bundle)
}

// handleGetResults returns the stored results bundle for a campaign.
func (h *Handler) handleGetResults(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.campaigns.GetResults(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, bundle)
}

// handleExportResults streams the results bundle as a CSV download.
func (h *Handler) handleExportResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	bundle, err := h.campaigns.GetResults(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "campaign-"+id+".csv"))
	if err = export.WriteResultsCSV(w, *bundle); err != nil {
		h.logger.Error("export results error", "error", err)
	}
}

// handleOptimize returns an optimization plan for a campaign, served by
// the remote ML service when reachable and the rule-based engine
// otherwise.
func (h *Handler) handleOptimize(w http.ResponseWriter, r *http.Request) {
	plan, err := h.campaigns.Optimize(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}
