package geom

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
)

func TestHaversineIdenticalPointsIsZero(t *testing.T) {
	p := orb.Point{-71.0589, 42.3601}
	if d := Haversine(p, p); d != 0 {
		t.Fatalf("distance between identical points = %v, want 0", d)
	}
}

func TestHaversineSymmetric(t *testing.T) {
	a := orb.Point{-71.0589, 42.3601}
	b := orb.Point{-71.0936, 42.3188}
	if d1, d2 := Haversine(a, b), Haversine(b, a); d1 != d2 {
		t.Fatalf("dist(a,b)=%v != dist(b,a)=%v", d1, d2)
	}
}

func TestHaversineKnownDistance(t *testing.T) {
	// Boston Common to Harvard Square, roughly 5.1 km.
	a := orb.Point{-71.0655, 42.3550}
	b := orb.Point{-71.1190, 42.3736}
	d := Haversine(a, b)
	if d < 4500 || d > 5500 {
		t.Fatalf("Boston Common to Harvard Square = %v m, want ~5100 m", d)
	}
}

func TestFormatDistanceSwitchesAtOneKilometer(t *testing.T) {
	cases := []struct {
		meters float64
		want   string
	}{
		{0, "0 m"},
		{850, "850 m"},
		{999, "999 m"},
		{1000, "1.0 km"},
		{1250, "1.2 km"},
		{12345, "12.3 km"},
	}
	for _, tc := range cases {
		if got := FormatDistance(tc.meters); got != tc.want {
			t.Errorf("FormatDistance(%v) = %q, want %q", tc.meters, got, tc.want)
		}
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport(orb.Bound{Min: orb.Point{-71.2, 42.2}, Max: orb.Point{-70.9, 42.5}})
	w, h := 80, 24
	lon, lat := -71.05, 42.36
	mx, my, ok := v.MicroXY(lon, lat, w, h)
	if !ok {
		t.Fatal("MicroXY not ok")
	}
	gotLon, gotLat, ok := v.MicroToLonLat(mx, my, w, h)
	if !ok {
		t.Fatal("MicroToLonLat not ok")
	}
	// One micro-pixel of quantization error in each axis.
	lonTol := (v.Bound.Max[0] - v.Bound.Min[0]) / float64(w*MicroPerCellX-1)
	latTol := (v.Bound.Max[1] - v.Bound.Min[1]) / float64(h*MicroPerCellY-1)
	if math.Abs(gotLon-lon) > lonTol || math.Abs(gotLat-lat) > latTol {
		t.Fatalf("round trip (%v,%v) -> (%v,%v)", lon, lat, gotLon, gotLat)
	}
}

func TestViewportRejectsDegenerateBound(t *testing.T) {
	v := NewViewport(orb.Bound{Min: orb.Point{1, 1}, Max: orb.Point{1, 1}})
	if _, _, ok := v.MicroXY(1, 1, 80, 24); ok {
		t.Fatal("expected not ok for degenerate bound")
	}
	if _, _, ok := v.MicroToLonLat(0, 0, 80, 24); ok {
		t.Fatal("expected not ok for degenerate bound")
	}
}

func TestContainsPoint(t *testing.T) {
	square := orb.Polygon{{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	if !ContainsPoint(square, orb.Point{5, 5}) {
		t.Fatal("center of square not contained")
	}
	if ContainsPoint(square, orb.Point{15, 5}) {
		t.Fatal("point outside square reported contained")
	}
	if ContainsPoint(nil, orb.Point{0, 0}) {
		t.Fatal("nil geometry reported contained")
	}
}

func TestClamp01(t *testing.T) {
	if Clamp01(-0.2) != 0 || Clamp01(1.7) != 1 || Clamp01(0.42) != 0.42 {
		t.Fatal("Clamp01 misbehaves")
	}
}
