// Package server assembles all HTTP handlers and starts the server.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/uaetax/tax-calculator/internal/calculation"
	"github.com/uaetax/tax-calculator/internal/notify"
)

// Config holds server configuration.
type Config struct {
	Port       int
	Engine     *calculation.Engine
	Dispatcher *notify.Dispatcher
}

// NewRouter builds the chi router with all routes registered.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	ch := NewCalculationHandler(cfg.Engine)
	r.Route("/v1/calculations", func(r chi.Router) {
		r.Post("/corporate-tax", ch.CalculateCorporate)
		r.Post("/corporate-tax/de-minimis", ch.RunDeMinimis)
		r.Post("/transfer-pricing", ch.CalculateTransferPricing)
		r.Post("/vat", ch.CalculateVAT)
		r.Post("/excise", ch.CalculateExcise)
	})

	if cfg.Dispatcher != nil {
		lh := NewLeadHandler(cfg.Dispatcher)
		r.Post("/v1/leads", lh.SubmitLead)
	}

	return r
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           NewRouter(cfg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
