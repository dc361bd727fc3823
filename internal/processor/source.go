// Package processor runs the batch jobs behind the command line tools:
// loading reference paths, rendering steps to files and exporting geometry.
package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/woozymasta/spherepath/internal/config"
)

// pathDocument covers the GeoJSON objects a path may come wrapped in:
// FeatureCollection, Feature or a bare LineString geometry.
type pathDocument struct {
	Type        string         `json:"type"`
	Features    []pathDocument `json:"features"`
	Geometry    *pathDocument  `json:"geometry"`
	Coordinates [][]float64    `json:"coordinates"`
}

// LoadPath reads a reference path from a GeoJSON document, either a local
// file or an http(s) URL. The first LineString found is used; positions are
// [longitude, latitude, ...] in degrees.
func LoadPath(ctx context.Context, client *http.Client, source string) ([]config.Point, error) {
	data, err := readSource(ctx, client, source)
	if err != nil {
		return nil, fmt.Errorf("read path %s: %w", source, err)
	}

	var doc pathDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode path %s: %w", source, err)
	}

	line, ok := findLineString(doc)
	if !ok {
		return nil, fmt.Errorf("path %s: no LineString geometry found", source)
	}
	if len(line) < 2 {
		return nil, fmt.Errorf("path %s: LineString needs at least 2 positions, got %d", source, len(line))
	}

	points := make([]config.Point, len(line))
	for i, pos := range line {
		if len(pos) < 2 {
			return nil, fmt.Errorf("path %s: position %d has %d values, need at least 2", source, i, len(pos))
		}
		points[i] = config.Point{Longitude: pos[0], Latitude: pos[1]}
	}

	log.Debug().
		Str("source", source).
		Int("points", len(points)).
		Msg("Reference path loaded")

	return points, nil
}

func findLineString(doc pathDocument) ([][]float64, bool) {
	switch doc.Type {
	case "LineString":
		return doc.Coordinates, true
	case "Feature":
		if doc.Geometry != nil {
			return findLineString(*doc.Geometry)
		}
	case "FeatureCollection":
		for _, f := range doc.Features {
			if line, ok := findLineString(f); ok {
				return line, true
			}
		}
	}
	return nil, false
}

func readSource(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		return os.ReadFile(filepath.Clean(source))
	}

	log.Info().Str("url", source).Msg("Downloading reference path")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	// read-only, close error carries nothing useful
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ResolveShortestPath loads cfg.ShortestPathSource into cfg.ShortestPath when
// set and validates the result.
func ResolveShortestPath(ctx context.Context, client *http.Client, cfg *config.Config) error {
	if cfg.ShortestPathSource == "" {
		return nil
	}

	points, err := LoadPath(ctx, client, cfg.ShortestPathSource)
	if err != nil {
		return err
	}

	cfg.ShortestPath = points
	cfg.ShortestPathSource = ""
	return cfg.Validate()
}
