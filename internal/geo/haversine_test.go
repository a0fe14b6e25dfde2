package geo

import (
	"errors"
	"math"
	"testing"

	"mandoob-route-service/internal/domain"
)

var (
	downtown = domain.Coordinate{Lat: 30.0444, Lng: 31.2357}
	tahrir   = domain.Coordinate{Lat: 30.0566, Lng: 31.2394}
	dokki    = domain.Coordinate{Lat: 30.0700, Lng: 31.2200}
	ramses   = domain.Coordinate{Lat: 30.0626, Lng: 31.2497}
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	d, err := DistanceKm(downtown, downtown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestDistanceKmKnownPair(t *testing.T) {
	d, err := DistanceKm(downtown, tahrir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Downtown Cairo to Tahrir Square is roughly 1.4 km as the crow flies.
	if d < 1.3 || d > 1.5 {
		t.Fatalf("distance = %f km, want ~1.4", d)
	}

	back, err := DistanceKm(tahrir, downtown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(d-back) > 1e-12 {
		t.Fatalf("distance not symmetric: %f vs %f", d, back)
	}
}

func TestDistanceKmTriangleInequality(t *testing.T) {
	points := []domain.Coordinate{downtown, tahrir, dokki, ramses}

	for _, a := range points {
		for _, b := range points {
			for _, c := range points {
				ab, _ := DistanceKm(a, b)
				bc, _ := DistanceKm(b, c)
				ac, _ := DistanceKm(a, c)
				if ac > ab+bc+1e-9 {
					t.Fatalf("triangle inequality violated: d(a,c)=%f > d(a,b)+d(b,c)=%f", ac, ab+bc)
				}
			}
		}
	}
}

func TestDistanceKmRejectsOutOfRange(t *testing.T) {
	bad := []domain.Coordinate{
		{Lat: 91, Lng: 0},
		{Lat: -91, Lng: 0},
		{Lat: 0, Lng: 181},
		{Lat: 0, Lng: -181},
	}

	for _, c := range bad {
		if _, err := DistanceKm(c, downtown); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("DistanceKm(%+v, ok) error = %v, want ErrInvalidCoordinate", c, err)
		}
		if _, err := DistanceKm(downtown, c); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("DistanceKm(ok, %+v) error = %v, want ErrInvalidCoordinate", c, err)
		}
	}
}

func TestETAMinutes(t *testing.T) {
	if got := ETAMinutes(10, 20); got != 30 {
		t.Fatalf("ETAMinutes(10, 20) = %f, want 30", got)
	}

	// Non-positive speed falls back to the default.
	if got, want := ETAMinutes(10, 0), ETAMinutes(10, DefaultAvgSpeedKmh); got != want {
		t.Fatalf("ETAMinutes(10, 0) = %f, want %f", got, want)
	}
}

func TestDisplayMinutes(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{12.4, 12},
		{12.5, 13},
		{29.999, 30},
	}
	for _, tc := range cases {
		if got := DisplayMinutes(tc.in); got != tc.want {
			t.Errorf("DisplayMinutes(%f) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
