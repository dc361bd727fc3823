package tutorial

import (
	"image/color"

	"github.com/woozymasta/spherepath/internal/geo"
)

// Stroke is one polyline with the color it was drawn in.
type Stroke struct {
	Path  geo.Path
	Color color.RGBA
}

// Recorder is a Surface that keeps the strokes instead of drawing them.
type Recorder struct {
	strokes []Stroke
	clears  int
}

// ClearPaths drops all recorded strokes.
func (r *Recorder) ClearPaths() {
	r.strokes = r.strokes[:0]
	r.clears++
}

// DisplayPaths records one stroke per path.
func (r *Recorder) DisplayPaths(c color.RGBA, paths ...geo.Path) {
	for _, p := range paths {
		r.strokes = append(r.strokes, Stroke{Path: p, Color: c})
	}
}

// Strokes returns a copy of the recorded strokes in drawing order.
func (r *Recorder) Strokes() []Stroke {
	out := make([]Stroke, len(r.strokes))
	copy(out, r.strokes)
	return out
}

// Clears reports how many times the surface was cleared.
func (r *Recorder) Clears() int { return r.clears }

// Record runs the tutorial up to step on a fresh Recorder and returns the strokes.
func Record(t Tutorial, step int) ([]Stroke, error) {
	rec := &Recorder{}
	seq, err := NewSequencer(rec, t)
	if err != nil {
		return nil, err
	}
	if err := seq.Display(step); err != nil {
		return nil, err
	}
	return rec.Strokes(), nil
}
