package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"campsim/internal/core/domain"
)

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError translates domain errors into HTTP statuses: invalid input
// becomes 400, missing records 404, anything else a generic 500 so
// internals are not leaked.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsInvalidInput(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		h.logger.Error("request error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
