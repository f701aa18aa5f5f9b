package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"campsim/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign and creative usecases to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	campaigns port.CampaignUseCase
	creatives port.CreativeUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router with
// CORS enabled for the given origins.
func NewHandler(campaigns port.CampaignUseCase, creatives port.CreativeUseCase, logger *slog.Logger, allowedOrigins []string) *Handler {
	h := &Handler{campaigns: campaigns, creatives: creatives, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.handleHealth)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", h.handleCreateCampaign)
			r.Get("/", h.handleListCampaigns)
			r.Get("/{id}", h.handleGetCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Post("/{id}/simulate", h.handleRunSimulation)
			r.Get("/{id}/results", h.handleGetResults)
			r.Get("/{id}/results/export", h.handleExportResults)
			r.Post("/{id}/optimize", h.handleOptimize)
		})

		r.Route("/creatives", func(r chi.Router) {
			r.Post("/score", h.handleScoreCreative)
			r.Post("/rank", h.handleRankCreatives)
			r.Get("/suggestions", h.handleCreativeSuggestions)
			r.Get("/history", h.handleCreativeHistory)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// handleHealth reports service liveness.
func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
