package geo

import (
	"testing"

	"github.com/golang/geo/r3"
)

func TestOrientation_ApplyBringsFocusToViewer(t *testing.T) {
	tests := []struct {
		lon, lat float64
	}{
		{0, 0},
		{90, 0},
		{-60, 20},
		{170, -45},
		{10, 90},
	}
	for _, tt := range tests {
		p, _ := ToCartesian(tt.lon, tt.lat, 5)
		got := Focus(tt.lon, tt.lat).Apply(p)
		if !almostVec(got, r3.Vector{Z: 5}, 1e-9) {
			t.Errorf("focus (%v,%v): want (0,0,5) got %v", tt.lon, tt.lat, got)
		}
	}
}

func TestOrientation_ApplyKeepsNorm(t *testing.T) {
	o := Focus(33, -12)
	v := r3.Vector{X: 1.5, Y: -2, Z: 0.25}
	if !almost(o.Apply(v).Norm(), v.Norm(), 1e-12) {
		t.Fatalf("rotation changed length: %v vs %v", o.Apply(v).Norm(), v.Norm())
	}
}

func TestOrientation_IdentityAtOrigin(t *testing.T) {
	v := r3.Vector{X: 1, Y: 2, Z: 3}
	if got := (Orientation{}).Apply(v); !almostVec(got, v, 1e-12) {
		t.Fatalf("want %v got %v", v, got)
	}
}

func TestOrientation_EastIsRight(t *testing.T) {
	o := Focus(0, 0)
	east, _ := ToCartesian(30, 0, 1)
	if o.Apply(east).X <= 0 {
		t.Fatalf("east of focus should be on +X, got %v", o.Apply(east))
	}
	north, _ := ToCartesian(0, 30, 1)
	if o.Apply(north).Y <= 0 {
		t.Fatalf("north of focus should be on +Y, got %v", o.Apply(north))
	}
}

func TestOrientation_Drag(t *testing.T) {
	o := Focus(0, 0).Drag(1, 2, 5)
	if o.Longitude != -5 || o.Latitude != -10 {
		t.Fatalf("want (-5,-10) got (%v,%v)", o.Longitude, o.Latitude)
	}

	o = Focus(0, 80).Drag(0, -10, 5)
	if o.Latitude != 90 {
		t.Fatalf("latitude should clamp at 90, got %v", o.Latitude)
	}

	o = Focus(175, 0).Drag(-2, 0, 5)
	if o.Longitude != -175 {
		t.Fatalf("longitude should wrap to -175, got %v", o.Longitude)
	}
}
