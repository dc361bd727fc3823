package geo

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestGreatCircle_EndpointsAndNorm(t *testing.T) {
	start, _ := ToCartesian(-60, 20, 5)
	end, _ := ToCartesian(80, 40, 5)

	arc, err := GreatCircle(start, end, 15, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(arc) != 15 {
		t.Fatalf("want 15 points, got %d", len(arc))
	}
	if !almostVec(arc[0], start, 1e-9) || !almostVec(arc[14], end, 1e-9) {
		t.Fatalf("endpoints not preserved: %v .. %v", arc[0], arc[14])
	}
	for i, p := range arc {
		if !almost(p.Norm(), 5, 1e-9) {
			t.Errorf("point %d: norm %v, want 5", i, p.Norm())
		}
	}
}

func TestGreatCircle_EvenAngularSpacing(t *testing.T) {
	start, _ := ToCartesian(0, 0, 1)
	end, _ := ToCartesian(90, 0, 1)

	arc, err := GreatCircle(start, end, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(arc); i++ {
		step := arc[i-1].Angle(arc[i]).Degrees()
		if !almost(step, 30, 1e-9) {
			t.Errorf("step %d: want 30 degrees, got %v", i, step)
		}
	}
}

func TestGreatCircle_PolylineLengths(t *testing.T) {
	// the projected chord lies on the same arc, so both polylines converge on
	// the same length; the great circle spaces its samples evenly
	start, _ := ToCartesian(-70, 10, 5)
	end, _ := ToCartesian(70, 10, 5)

	arc, _ := GreatCircle(start, end, 200, 5)
	line, _ := StraightLine(start, end, 200)
	projected, _ := ProjectOntoSphere(line, 5)

	want, _ := ArcLength(start, end, 5)
	if !almost(PolylineLength(arc), want, 1e-3) {
		t.Errorf("arc polyline %v, want ~%v", PolylineLength(arc), want)
	}
	if !almost(PolylineLength(projected), want, 1e-2) {
		t.Errorf("projected polyline %v, want ~%v", PolylineLength(projected), want)
	}
	if ChordLength(start, end) >= want {
		t.Errorf("chord %v should be shorter than arc %v", ChordLength(start, end), want)
	}
}

func TestGreatCircle_Invalid(t *testing.T) {
	a := r3.Vector{Z: 5}
	tests := []struct {
		name   string
		start  r3.Vector
		end    r3.Vector
		n      int
		radius float64
	}{
		{"one sample", a, r3.Vector{X: 5}, 1, 5},
		{"zero radius", a, r3.Vector{X: 5}, 3, 0},
		{"centre endpoint", a, r3.Vector{}, 3, 5},
		{"antipodal", a, r3.Vector{Z: -5}, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GreatCircle(tt.start, tt.end, tt.n, tt.radius); !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("want ErrInvalidArgument, got %v", err)
			}
		})
	}
}

func TestSpacingDrift(t *testing.T) {
	start, _ := ToCartesian(-70, 0, 5)
	end, _ := ToCartesian(70, 0, 5)

	line, _ := StraightLine(start, end, 15)
	projected, _ := ProjectOntoSphere(line, 5)
	arc, _ := GreatCircle(start, end, 15, 5)

	drift, err := SpacingDrift(projected, arc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(drift) != 15 {
		t.Fatalf("want 15 values, got %d", len(drift))
	}
	if !almost(drift[0], 0, 1e-6) || !almost(drift[14], 0, 1e-6) {
		t.Errorf("endpoints should not drift: %v, %v", drift[0], drift[14])
	}
	// symmetric arc: the middle sample lands on the arc midpoint
	if !almost(drift[7], 0, 1e-6) {
		t.Errorf("middle sample should not drift, got %v", drift[7])
	}
	if drift[3] < 1 {
		t.Errorf("expected visible drift at sample 3, got %v", drift[3])
	}
	if MaxDrift(drift) < drift[3] {
		t.Errorf("MaxDrift %v below sample drift %v", MaxDrift(drift), drift[3])
	}
}

func TestSpacingDrift_Invalid(t *testing.T) {
	if _, err := SpacingDrift([]r3.Vector{{X: 1}}, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("length mismatch: want ErrInvalidArgument, got %v", err)
	}
	if _, err := SpacingDrift([]r3.Vector{{}}, []r3.Vector{{X: 1}}); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("centre: want ErrInvalidArgument, got %v", err)
	}
}

func TestArcLength(t *testing.T) {
	got, err := ArcLength(r3.Vector{Z: 1}, r3.Vector{X: 1}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almost(got, math.Pi, 1e-12) {
		t.Fatalf("want pi, got %v", got)
	}
	if _, err := ArcLength(r3.Vector{}, r3.Vector{X: 1}, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}
