package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"campsim/internal/core/domain"
)

// handleScoreCreative scores one piece of ad copy. The request body is
// decoded into a domain.Creative; empty copy produces HTTP 400. On
// success the composite score with sub-scores and suggestions is
// returned.
func (h *Handler) handleScoreCreative(w http.ResponseWriter, r *http.Request) {
	var creative domain.Creative
	if err := json.NewDecoder(r.Body).Decode(&creative); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	score, err := h.creatives.Score(r.Context(), creative)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, score)
}

// handleRankCreatives scores a list of creatives and returns them
// ordered best first.
func (h *Handler) handleRankCreatives(w http.ResponseWriter, r *http.Request) {
	var creatives []domain.Creative
	if err := json.NewDecoder(r.Body).Decode(&creatives); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	ranked, err := h.creatives.Rank(r.Context(), creatives)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ranked)
}

// handleCreativeSuggestions returns template copy ideas. It expects
// `channel`, `product` and `category` query parameters; product is
// required, unknown channels fall back to generic templates.
func (h *Handler) handleCreativeSuggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	product := q.Get("product")
	if product == "" {
		http.Error(w, "missing product", http.StatusBadRequest)
		return
	}
	channel := domain.Channel(q.Get("channel"))
	suggestions := h.creatives.Suggestions(r.Context(), channel, product, q.Get("category"))
	h.writeJSON(w, http.StatusOK, suggestions)
}

// handleCreativeHistory returns recent creative score records. The
// optional `limit` query parameter defaults to 20.
func (h *Handler) handleCreativeHistory(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}
	records, err := h.creatives.History(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, records)
}
