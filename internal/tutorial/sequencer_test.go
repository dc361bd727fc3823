package tutorial

import (
	"errors"
	"math"
	"testing"

	"github.com/woozymasta/spherepath/internal/config"
	"github.com/woozymasta/spherepath/internal/geo"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Sphere: config.Sphere{Radius: 5, Width: 0.05},
		Start:  config.Point{Longitude: -60, Latitude: 20},
		End:    config.Point{Longitude: 80, Latitude: 40},
	}
	cfg.ApplyDefaults()
	return cfg
}

func testTutorial(t *testing.T) Tutorial {
	t.Helper()
	tut, err := FromConfig(testConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return tut
}

func TestDisplay_StrokeCounts(t *testing.T) {
	tests := []struct {
		step int
		want int
	}{
		{0, 0},
		{-3, 0},
		{1, 1},
		{2, 1 + 17},
		{3, 1 + 17 + 15},
		{4, 1 + 17 + 15 + 1},
		{9, 1 + 17 + 15 + 1},
	}

	for _, tt := range tests {
		rec := &Recorder{}
		seq, err := NewSequencer(rec, testTutorial(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := seq.Display(tt.step); err != nil {
			t.Fatalf("step %d: unexpected error: %v", tt.step, err)
		}
		if got := len(rec.Strokes()); got != tt.want {
			t.Errorf("step %d: want %d strokes, got %d", tt.step, tt.want, got)
		}
		if rec.Clears() != 1 {
			t.Errorf("step %d: want one clear, got %d", tt.step, rec.Clears())
		}
	}
}

func TestDisplay_ClearsBetweenCalls(t *testing.T) {
	rec := &Recorder{}
	seq, _ := NewSequencer(rec, testTutorial(t))

	_ = seq.Display(4)
	_ = seq.Display(1)
	if len(rec.Strokes()) != 1 || rec.Clears() != 2 {
		t.Fatalf("want 1 stroke after 2 clears, got %d strokes %d clears", len(rec.Strokes()), rec.Clears())
	}
}

func TestDisplay_StepGeometry(t *testing.T) {
	tut := testTutorial(t)
	rec := &Recorder{}
	seq, _ := NewSequencer(rec, tut)
	if err := seq.Display(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	strokes := rec.Strokes()

	chord := strokes[0]
	if chord.Color != StraightLineColor || chord.Path.Len() != 2 {
		t.Fatalf("unexpected chord stroke %+v", chord)
	}

	// step 2: samples joined to the centre, first sample is the start point
	first := strokes[1].Path.Points()
	if !first[1].IsCenter() {
		t.Error("centre line should end at the sphere centre")
	}
	if d := first[0].Cartesian().Sub(tut.Start.Cartesian()).Norm(); d > 1e-9 {
		t.Errorf("first sample off start by %v", d)
	}

	// step 3: every projection ends on the surface
	for i := 18; i < 18+15; i++ {
		pts := strokes[i].Path.Points()
		if strokes[i].Color != ProjectionLineColor {
			t.Fatalf("stroke %d: unexpected color %v", i, strokes[i].Color)
		}
		if n := pts[1].Cartesian().Norm(); math.Abs(n-5) > 1e-9 {
			t.Errorf("stroke %d: projection norm %v", i, n)
		}
		if n := pts[0].Cartesian().Norm(); n > 5+1e-9 {
			t.Errorf("stroke %d: chord sample outside sphere, norm %v", i, n)
		}
	}

	last := strokes[len(strokes)-1]
	if last.Color != ShortestPathColor || last.Path.Len() != 15 {
		t.Fatalf("unexpected shortest path stroke: color %v len %d", last.Color, last.Path.Len())
	}
}

func TestDisplay_AntipodalFailsAtStepThree(t *testing.T) {
	cfg := testConfig()
	cfg.Start = config.Point{Longitude: 0, Latitude: 0}
	cfg.End = config.Point{Longitude: 180, Latitude: 0}
	cfg.ShortestPath = []config.Point{{Longitude: 0}, {Longitude: 90}, {Longitude: 180}}

	tut, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := &Recorder{}
	seq, _ := NewSequencer(rec, tut)
	if err := seq.Display(2); err != nil {
		t.Fatalf("step 2 should draw: %v", err)
	}

	err = seq.Display(3)
	if !errors.Is(err, geo.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
	if len(rec.Strokes()) != 18 {
		t.Errorf("steps before the failure should stay drawn, got %d strokes", len(rec.Strokes()))
	}
}

func TestFromConfig_AntipodalWithoutShortestPath(t *testing.T) {
	cfg := testConfig()
	cfg.Start = config.Point{Longitude: 0, Latitude: 0}
	cfg.End = config.Point{Longitude: 180, Latitude: 0}

	if _, err := FromConfig(cfg); !errors.Is(err, geo.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestFromConfig_ExplicitShortestPath(t *testing.T) {
	cfg := testConfig()
	cfg.ShortestPath = []config.Point{{Longitude: -60, Latitude: 20}, {Longitude: 10, Latitude: 50}, {Longitude: 80, Latitude: 40}}

	tut, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tut.ShortestPath.Len() != 3 {
		t.Fatalf("want 3 points, got %d", tut.ShortestPath.Len())
	}
	if got := tut.ShortestPath.Points()[1].Latitude(); got != 50 {
		t.Errorf("want latitude 50, got %v", got)
	}
}

func TestNewSequencer_Invalid(t *testing.T) {
	if _, err := NewSequencer(nil, testTutorial(t)); err == nil {
		t.Error("expected error for nil surface")
	}
	if _, err := NewSequencer(&Recorder{}, Tutorial{}); err == nil {
		t.Error("expected error for empty tutorial")
	}
	tut := testTutorial(t)
	tut.Samples = 1
	if _, err := NewSequencer(&Recorder{}, tut); err == nil {
		t.Error("expected error for one sample")
	}
}

func TestDrift(t *testing.T) {
	report, err := Drift(testTutorial(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(report.Drift) != 15 || report.Samples != 15 {
		t.Fatalf("want 15 drift values, got %d", len(report.Drift))
	}
	if report.MaxDrift <= 0 {
		t.Error("expected non-zero drift")
	}
	if report.ChordLength >= report.ArcLength {
		t.Errorf("chord %v should be shorter than arc %v", report.ChordLength, report.ArcLength)
	}
	if report.ProjectedLength > report.ArcLength+1e-9 {
		t.Errorf("projected polyline %v longer than arc %v", report.ProjectedLength, report.ArcLength)
	}
}
