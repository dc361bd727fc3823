package server

import (
	"fmt"
	"hash/crc32"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/spherepath/assets"
	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

// PageTitle is shown in the page header.
const PageTitle = "Shortest path on a sphere"

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config    *config.Config
	Tutorial  tutorial.Tutorial
	Focus     geo.Orientation
	IndexHTML []byte
	IndexETag string
	Favicon   []byte
}

// NewServerContext builds the tutorial from the configuration and renders the
// page once so requests only serve bytes.
func NewServerContext(cfg *config.Config) (*ServerContext, error) {
	log.Info().
		Float64("radius", cfg.Sphere.Radius).
		Int("samples", cfg.Samples).
		Msg("Initializing server context")

	t, err := tutorial.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build tutorial: %w", err)
	}

	focus := DefaultFocus(cfg)

	page, err := assets.Build(assets.PageData{
		Title:       PageTitle,
		Attribution: cfg.Attribution,
		Format:      cfg.Render.Format,
		MaxStep:     tutorial.MaxStep,
		Size:        cfg.Render.Size,
		FocusLon:    focus.Longitude,
		FocusLat:    focus.Latitude,
	})
	if err != nil {
		return nil, fmt.Errorf("build page: %w", err)
	}

	if len(cfg.ShortestPath) == 0 {
		log.Debug().Int("points", t.ShortestPath.Len()).Msg("Shortest path generated from great circle")
	}

	log.Info().
		Int("page_bytes", len(page)).
		Str("view", cfg.Render.View).
		Str("format", cfg.Render.Format).
		Msg("Server context initialized successfully")

	return &ServerContext{
		Config:    cfg,
		Tutorial:  t,
		Focus:     focus,
		IndexHTML: page,
		IndexETag: fmt.Sprintf(`"%08x"`, crc32.ChecksumIEEE(page)),
		Favicon:   assets.Favicon,
	}, nil
}

// DefaultFocus is the configured camera focus, or the start point when none is set.
func DefaultFocus(cfg *config.Config) geo.Orientation {
	if f := cfg.Render.Focus; f != nil {
		return geo.Focus(f.Longitude, f.Latitude)
	}
	return geo.Focus(cfg.Start.Longitude, cfg.Start.Latitude)
}
