// Package tutorial walks through the shortest-path lesson step by step and
// hands the resulting polylines to a drawing surface.
package tutorial

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/golang/geo/r3"

	"github.com/woozymasta/spherepath/internal/geo"
)

// MaxStep is the last step that adds something to the drawing.
const MaxStep = 4

// Colors used by each step.
var (
	StraightLineColor   = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	ConnectingLineColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	ProjectionLineColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	ShortestPathColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// Surface draws polylines. It is implemented by the renderers and the Recorder.
type Surface interface {
	// ClearPaths removes everything drawn so far.
	ClearPaths()
	// DisplayPaths draws each path as an open polyline in the given color.
	DisplayPaths(c color.RGBA, paths ...geo.Path)
}

// Tutorial is the data the lesson is built from.
type Tutorial struct {
	Start        geo.Coordinates
	End          geo.Coordinates
	ShortestPath geo.Path
	Samples      int
}

// Validate checks that every step can be computed from the tutorial data.
func (t Tutorial) Validate() error {
	if t.Start.Radius() <= 0 {
		return errors.New("tutorial: start point has no sphere radius")
	}
	if t.Samples < 2 {
		return fmt.Errorf("tutorial: samples must be at least 2, got %d", t.Samples)
	}
	if t.ShortestPath.Len() == 0 {
		return errors.New("tutorial: shortest path is empty")
	}
	return nil
}

// Sequencer reveals the tutorial on a surface one step at a time.
type Sequencer struct {
	surface  Surface
	tutorial Tutorial
}

// NewSequencer binds a tutorial to the surface it is drawn on.
func NewSequencer(surface Surface, t Tutorial) (*Sequencer, error) {
	if surface == nil {
		return nil, errors.New("tutorial: nil surface")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Sequencer{surface: surface, tutorial: t}, nil
}

// Display clears the surface and draws every step up to and including step:
//
//  1. the chord between the endpoints;
//  2. the chord samples, each joined to the sphere centre;
//  3. each chord sample joined to its projection onto the sphere;
//  4. the reference shortest path.
//
// Geometry errors stop the drawing and are returned as is, wrapped with the
// step that failed; the surface keeps what was drawn before the failure.
func (s *Sequencer) Display(step int) error {
	s.surface.ClearPaths()

	var line []r3.Vector
	var err error

	if step >= 1 {
		if err = s.displayChord(); err != nil {
			return fmt.Errorf("step 1: %w", err)
		}
	}
	if step >= 2 {
		if line, err = s.displayCenterLines(); err != nil {
			return fmt.Errorf("step 2: %w", err)
		}
	}
	if step >= 3 {
		if err = s.displayProjections(line); err != nil {
			return fmt.Errorf("step 3: %w", err)
		}
	}
	if step >= 4 {
		s.surface.DisplayPaths(ShortestPathColor, s.tutorial.ShortestPath)
	}

	return nil
}

func (s *Sequencer) displayChord() error {
	chord, err := geo.NewPath(s.tutorial.Start, s.tutorial.End)
	if err != nil {
		return err
	}
	s.surface.DisplayPaths(StraightLineColor, chord)
	return nil
}

func (s *Sequencer) displayCenterLines() ([]r3.Vector, error) {
	t := s.tutorial
	radius, width := t.Start.Radius(), t.Start.Width()

	line, err := geo.StraightLine(t.Start.Cartesian(), t.End.Cartesian(), t.Samples)
	if err != nil {
		return nil, err
	}

	center, err := geo.FromCartesian(r3.Vector{}, radius, width)
	if err != nil {
		return nil, err
	}

	paths := make([]geo.Path, 0, len(line)+2)
	for _, p := range line {
		sample, err := geo.FromCartesian(p, radius, width)
		if err != nil {
			return nil, err
		}
		path, err := geo.NewPath(sample, center)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	for _, endpoint := range []geo.Coordinates{t.Start, t.End} {
		path, err := geo.NewPath(endpoint, center)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	s.surface.DisplayPaths(ConnectingLineColor, paths...)
	return line, nil
}

func (s *Sequencer) displayProjections(line []r3.Vector) error {
	radius, width := s.tutorial.Start.Radius(), s.tutorial.Start.Width()

	projected, err := geo.ProjectOntoSphere(line, radius)
	if err != nil {
		return err
	}

	paths := make([]geo.Path, 0, len(line))
	for i := range line {
		path, err := geo.PathFromPoints([]r3.Vector{line[i], projected[i]}, radius, width)
		if err != nil {
			return err
		}
		paths = append(paths, path)
	}

	s.surface.DisplayPaths(ProjectionLineColor, paths...)
	return nil
}
