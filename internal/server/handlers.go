// Package server handles HTTP requests and middleware.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/render"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

// Error codes returned in JSON error bodies.
const (
	codeBadRequest    = "bad_request"
	codeInvalidGeom   = "invalid_geometry"
	codeInternalError = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type tutorialSummary struct {
	Start     config.Point    `json:"start"`
	End       config.Point    `json:"end"`
	Render    config.Render   `json:"render"`
	Focus     geo.Orientation `json:"focus"`
	Endpoints []string        `json:"endpoints"`
	Radius    float64         `json:"radius"`
	Width     float64         `json:"width"`
	Samples   int             `json:"samples"`
	MaxStep   int             `json:"max_step"`
	Generated bool            `json:"shortest_path_generated"`
}

// HandleIndex serves the main HTML application.
func (s *ServerContext) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if match := r.Header.Get("If-None-Match"); match == s.IndexETag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("ETag", s.IndexETag)
	w.Header().Set("Cache-Control", "public, no-cache")
	_, _ = w.Write(s.IndexHTML)
}

// HandleFavicon serves the site icon.
func (s *ServerContext) HandleFavicon(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(s.Favicon)
}

// HandleHealth reports liveness.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleTutorial serves a summary of the loaded configuration.
func (s *ServerContext) HandleTutorial(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, tutorialSummary{
		Start:   s.Config.Start,
		End:     s.Config.End,
		Render:  s.Config.Render,
		Focus:   s.Focus,
		Radius:  s.Config.Sphere.Radius,
		Width:   s.Config.Sphere.Width,
		Samples: s.Config.Samples,
		MaxStep: tutorial.MaxStep,
		Endpoints: []string{
			"/api/steps/{step}",
			"/api/steps/{step}/geojson",
			"/api/steps/{step}/image",
			"/api/drift",
		},
		Generated: len(s.Config.ShortestPath) == 0,
	})
}

// HandleStep serves the strokes drawn up to a step.
func (s *ServerContext) HandleStep(w http.ResponseWriter, r *http.Request) {
	step, ok := parseStep(w, r)
	if !ok {
		return
	}

	strokes, err := tutorial.Record(s.Tutorial, step)
	if err != nil {
		writeGeometryError(w, r, "step", err)
		return
	}

	writeJSON(w, http.StatusOK, tutorial.StepStrokes(step, s.Config.Sphere.Radius, strokes))
}

// HandleStepGeoJSON serves the strokes drawn up to a step as LineStrings.
func (s *ServerContext) HandleStepGeoJSON(w http.ResponseWriter, r *http.Request) {
	step, ok := parseStep(w, r)
	if !ok {
		return
	}

	strokes, err := tutorial.Record(s.Tutorial, step)
	if err != nil {
		writeGeometryError(w, r, "geojson", err)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	_ = json.NewEncoder(w).Encode(tutorial.GeoJSON(step, strokes))
}

// HandleStepImage renders a step as an image.
// Query: view=globe|plane, format=png|webp, lon, lat (camera focus), size.
func (s *ServerContext) HandleStepImage(w http.ResponseWriter, r *http.Request) {
	step, ok := parseStep(w, r)
	if !ok {
		return
	}

	opts, err := s.imageOptions(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	contentType, err := render.ContentType(opts.format)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	start := time.Now()

	surface, err := render.New(opts.view, opts.size, s.Config.Sphere.Radius, opts.focus)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	seq, err := tutorial.NewSequencer(surface, s.Tutorial)
	if err != nil {
		writeGeometryError(w, r, "image", err)
		return
	}
	if err := seq.Display(step); err != nil {
		writeGeometryError(w, r, "image", err)
		return
	}

	var buf bytes.Buffer
	if err := render.Encode(&buf, surface.Image(), opts.format, s.Config.Render.Quality); err != nil {
		log.Error().Err(err).Str("format", opts.format).Msg("Failed to encode image")
		writeError(w, http.StatusInternalServerError, codeInternalError, "failed to encode image")
		return
	}

	renderDuration.WithLabelValues(opts.view, opts.format).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(buf.Bytes())
}

// HandleDrift serves the spacing drift between projected chord samples and
// the great-circle arc.
func (s *ServerContext) HandleDrift(w http.ResponseWriter, r *http.Request) {
	report, err := tutorial.Drift(s.Tutorial)
	if err != nil {
		writeGeometryError(w, r, "drift", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type imageOptions struct {
	view   string
	format string
	focus  geo.Orientation
	size   int
}

func (s *ServerContext) imageOptions(r *http.Request) (imageOptions, error) {
	q := r.URL.Query()
	opts := imageOptions{
		view:   s.Config.Render.View,
		format: s.Config.Render.Format,
		focus:  s.Focus,
		size:   s.Config.Render.Size,
	}

	if v := q.Get("view"); v != "" {
		opts.view = strings.ToLower(v)
	}
	if opts.view != render.ViewGlobe && opts.view != render.ViewPlane {
		return opts, fmt.Errorf("view must be %q or %q, got %q", render.ViewGlobe, render.ViewPlane, opts.view)
	}

	if v := q.Get("format"); v != "" {
		opts.format = strings.ToLower(v)
	}

	lon, lat := opts.focus.Longitude, opts.focus.Latitude
	var err error
	if v := q.Get("lon"); v != "" {
		if lon, err = parseFinite("lon", v); err != nil {
			return opts, err
		}
	}
	if v := q.Get("lat"); v != "" {
		if lat, err = parseFinite("lat", v); err != nil {
			return opts, err
		}
	}
	opts.focus = geo.Focus(lon, lat)

	if v := q.Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 64 || size > 4096 {
			return opts, fmt.Errorf("size must be an integer between 64 and 4096, got %q", v)
		}
		opts.size = size
	}

	return opts, nil
}

func parseFinite(name, v string) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be a finite number, got %q", name, v)
	}
	return f, nil
}

// parseStep reads the {step} URL parameter and writes a 400 when it is not
// an integer in [0, MaxStep].
func parseStep(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "step")
	step, err := strconv.Atoi(raw)
	if err != nil || step < 0 || step > tutorial.MaxStep {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			fmt.Sprintf("step must be an integer between 0 and %d, got %q", tutorial.MaxStep, raw))
		return 0, false
	}
	return step, true
}

func writeGeometryError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	if errors.Is(err, geo.ErrInvalidArgument) {
		geometryErrorsTotal.WithLabelValues(endpoint).Inc()
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("Geometry rejected")
		writeError(w, http.StatusUnprocessableEntity, codeInvalidGeom, err.Error())
		return
	}

	log.Error().Err(err).Str("path", r.URL.Path).Msg("Internal error")
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// client disconnects cannot be handled here
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
