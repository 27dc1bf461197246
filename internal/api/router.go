// Package api exposes the turn handler over HTTP for local development
// and testing against the deployed Lambda behavior.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/booking"
	httpmiddleware "github.com/CairoAtlas/schedule-appointment-lex-bot/internal/http/middleware"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/lex"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	Handler        *booking.Handler
	MetricsHandler http.Handler
}

// NewRouter creates a chi router with the turn endpoint wired.
func NewRouter(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	r.Post("/lex", handleTurn(cfg))

	return r
}

func handleTurn(cfg *Config) http.HandlerFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req lex.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := cfg.Handler.HandleTurn(r.Context(), &req)
		if err != nil {
			if errors.Is(err, booking.ErrUnsupportedIntent) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			logger.Error("turn failed", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Error("encode response", "error", err)
		}
	}
}
