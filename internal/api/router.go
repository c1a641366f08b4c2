package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"festival-campaign-engine/internal/observability"
)

func Router(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/v1/campaigns/current", h.CurrentCampaign)
	r.Get("/v1/collections/{collectionID}", h.CampaignByCollection)
	r.Get("/v1/serviceability", h.Serviceability)
	r.Get("/v1/featherlight", h.Featherlight)
	r.Put("/v1/featherlight/mode", h.SetFeatherlightMode)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.MetricsHandler())
	return r
}
