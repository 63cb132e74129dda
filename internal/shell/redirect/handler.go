package redirect

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// =============================================================================
// Handler
// =============================================================================

// Handler provides the redirect-resolution HTTP endpoint.
type Handler struct {
	resolver Resolver
	logger   *slog.Logger
}

// NewHandler creates a new redirect handler.
func NewHandler(resolver Resolver, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		resolver: resolver,
		logger:   logger,
	}
}

// ResolveRequest is the request body for POST /.
type ResolveRequest struct {
	URL string `json:"url"`
}

// ResolveResponse is the success response for POST /.
type ResolveResponse struct {
	FinalURL string `json:"finalUrl"`
}

// ErrorResponse is the error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the health check response body.
type HealthResponse struct {
	Status string `json:"status"`
}

// Routes returns the router with all routes configured.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.cors)

	r.Get("/health", h.handleHealth)
	r.Post("/", h.handleResolve)

	return r
}

// =============================================================================
// Middleware
// =============================================================================

// cors stamps permissive CORS headers on every response and answers
// preflight OPTIONS requests on any path with an empty 200.
func (h *Handler) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

func (h *Handler) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.URL == "" {
		h.writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	finalURL, err := h.resolver.Resolve(r.Context(), req.URL)
	if err != nil {
		h.logger.Error("failed to resolve redirect chain",
			"url", req.URL,
			"error", err,
		)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("resolved redirect chain",
		"url", req.URL,
		"final_url", finalURL,
	)
	h.writeJSON(w, http.StatusOK, ResolveResponse{FinalURL: finalURL})
}

// =============================================================================
// Response Helpers
// =============================================================================

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Error: message})
}
