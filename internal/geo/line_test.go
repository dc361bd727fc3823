package geo

import (
	"errors"
	"testing"

	"github.com/golang/geo/r3"
)

func TestStraightLine_Concrete(t *testing.T) {
	got, err := StraightLine(r3.Vector{Z: 5}, r3.Vector{X: 5}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []r3.Vector{{Z: 5}, {X: 2.5, Z: 2.5}, {X: 5}}
	if len(got) != len(want) {
		t.Fatalf("want %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if !almostVec(got[i], want[i], 1e-12) {
			t.Errorf("point %d: want %v got %v", i, want[i], got[i])
		}
	}
}

func TestStraightLine_EndpointsAndCount(t *testing.T) {
	a := r3.Vector{X: -1.3, Y: 2.2, Z: 0.7}
	b := r3.Vector{X: 4.1, Y: -0.9, Z: 3.3}

	for _, n := range []int{2, 3, 15, 100} {
		pts, err := StraightLine(a, b, n)
		if err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if len(pts) != n {
			t.Fatalf("n=%d: got %d points", n, len(pts))
		}
		if pts[0] != a {
			t.Errorf("n=%d: first point %v, want %v", n, pts[0], a)
		}
		if pts[n-1] != b {
			t.Errorf("n=%d: last point %v, want %v", n, pts[n-1], b)
		}
	}
}

func TestStraightLine_Monotonic(t *testing.T) {
	a := r3.Vector{X: 1, Y: 2, Z: 3}
	b := r3.Vector{X: -3, Y: 0, Z: 8}
	dir := b.Sub(a)

	pts, err := StraightLine(a, b, 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := -1.0
	for i, p := range pts {
		// parametric position along the segment
		tpos := p.Sub(a).Dot(dir) / dir.Norm2()
		if tpos <= prev {
			t.Fatalf("sample %d not after previous: t=%v prev=%v", i, tpos, prev)
		}
		prev = tpos
	}
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[i-1] {
			t.Fatalf("samples %d and %d coincide", i-1, i)
		}
	}
}

func TestStraightLine_TooFewSamples(t *testing.T) {
	for _, n := range []int{1, 0, -3} {
		if _, err := StraightLine(r3.Vector{X: 1}, r3.Vector{Y: 1}, n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("n=%d: want ErrInvalidArgument, got %v", n, err)
		}
	}
}
