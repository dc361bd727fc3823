package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires the handlers and middleware.
func (s *ServerContext) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger)
	r.Use(MetricsMiddleware)

	r.Get("/", s.HandleIndex)
	r.Get("/favicon.svg", s.HandleFavicon)
	r.Get("/healthz", s.HandleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/tutorial", s.HandleTutorial)
		r.Get("/drift", s.HandleDrift)
		r.Route("/steps/{step}", func(r chi.Router) {
			r.Get("/", s.HandleStep)
			r.Get("/geojson", s.HandleStepGeoJSON)
			r.Get("/image", s.HandleStepImage)
		})
	})

	return r
}
