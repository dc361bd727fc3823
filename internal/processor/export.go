package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/woozymasta/spherepath/internal/geo"
	"github.com/woozymasta/spherepath/internal/tutorial"
)

// Export is the geometry dump of a tutorial: every step's strokes plus the
// spacing drift report.
type Export struct {
	Drift  *tutorial.DriftReport `json:"drift,omitempty" yaml:"drift,omitempty"`
	Steps  []tutorial.StepDTO    `json:"steps" yaml:"steps"`
	Radius float64               `json:"radius" yaml:"radius"`
}

// BuildExport records steps 0 through last. When a later step cannot be
// computed, the steps before it are kept and the error is returned with them.
func BuildExport(t tutorial.Tutorial, last int, withDrift bool) (Export, error) {
	radius := t.Start.Radius()
	exp := Export{Radius: radius, Steps: make([]tutorial.StepDTO, 0, last+1)}

	for step := 0; step <= last; step++ {
		strokes, err := tutorial.Record(t, step)
		if err != nil {
			return exp, err
		}
		exp.Steps = append(exp.Steps, tutorial.StepStrokes(step, radius, strokes))
	}

	if withDrift {
		report, err := tutorial.Drift(t)
		if err != nil {
			return exp, fmt.Errorf("drift: %w", err)
		}
		exp.Drift = &report
	}

	return exp, nil
}

// BuildGeoJSON records step and returns its strokes as GeoJSON.
func BuildGeoJSON(t tutorial.Tutorial, step int) (geo.GeoJSONFeatureCollection, error) {
	strokes, err := tutorial.Record(t, step)
	if err != nil {
		return geo.GeoJSONFeatureCollection{}, err
	}
	return tutorial.GeoJSON(step, strokes), nil
}

// Marshal encodes v as indented json or yaml.
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case "json", "geojson":
		return json.MarshalIndent(v, "", "  ")
	case "yaml":
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// SaveFile writes data to path, creating parent directories.
func SaveFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}

	// we care about write errors on close
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
	}()

	_, err = f.Write(data)
	return err
}
