package paint

import "testing"

func TestFillOpacityByFlags(t *testing.T) {
	e := Choropleth()
	cases := []struct {
		f    Flags
		want float64
	}{
		{Flags{}, 0.60},
		{Flags{Hovered: true}, 0.75},
		{Flags{Selected: true}, 0.85},
		{Flags{Hovered: true, Selected: true}, 0.85},
	}
	for _, tc := range cases {
		if got := e.FillOpacity(tc.f); got != tc.want {
			t.Errorf("FillOpacity(%+v) = %v, want %v", tc.f, got, tc.want)
		}
	}
}

func TestLineRulesByFlags(t *testing.T) {
	e := Choropleth()
	if e.LineWidth(Flags{Selected: true}) != 3 ||
		e.LineWidth(Flags{Hovered: true}) != 2 ||
		e.LineWidth(Flags{}) != 0.8 {
		t.Fatal("line width rules off")
	}
	if e.LineOpacity(Flags{Selected: true}) != 1.0 ||
		e.LineOpacity(Flags{Hovered: true}) != 1.0 ||
		e.LineOpacity(Flags{}) != 0.3 {
		t.Fatal("line opacity rules off")
	}
	if e.LineColor(Flags{Selected: true}) != accentColor {
		t.Fatal("selected border must use the accent color")
	}
}

func TestRiskRampEndpointsAndOrder(t *testing.T) {
	e := Choropleth()
	low := e.FillColor(0.0)
	crit := e.FillColor(1.0)
	if low != hex("#22c55e") {
		t.Fatalf("ramp at 0.0 = %v, want low green", low)
	}
	if crit != hex("#ef4444") {
		t.Fatalf("ramp at 1.0 = %v, want critical red", crit)
	}
	// Breakpoints return their stop colors exactly.
	if e.FillColor(0.35) != hex("#eab308") || e.FillColor(0.6) != hex("#f59e0b") {
		t.Fatal("ramp breakpoints must hit their stop colors")
	}
	// Outside the range clamps.
	if e.FillColor(-1) != low || e.FillColor(2) != crit {
		t.Fatal("ramp must clamp outside [0,1]")
	}
}

func TestRampInterpolatesBetweenStops(t *testing.T) {
	r := Ramp{Stops: []RampStop{{0, hex("#000000")}, {1, hex("#ffffff")}}}
	mid := r.At(0.5)
	if mid == hex("#000000") || mid == hex("#ffffff") {
		t.Fatal("midpoint must differ from both endpoints")
	}
}

func TestGhostStaysQueryable(t *testing.T) {
	g := Ghost()
	if !g.Queryable {
		t.Fatal("ghost variant must remain hit-testable")
	}
	if op := g.FillOpacity(Flags{Selected: true}); op != 0.01 {
		t.Fatalf("ghost fill opacity = %v, want 0.01 regardless of flags", op)
	}
	if g.LineWidth(Flags{}) != 0 {
		t.Fatal("ghost resting border must be invisible")
	}
	if g.LineWidth(Flags{Hovered: true}) != 2 {
		t.Fatal("ghost hovered border must match the choropleth rule")
	}
}

func TestComposeOpacity(t *testing.T) {
	bg := hex("#000000")
	fg := hex("#ffffff")
	if Compose(fg, 1, bg) != fg {
		t.Fatal("full opacity returns the foreground")
	}
	if Compose(fg, 0, bg) != bg {
		t.Fatal("zero opacity returns the background")
	}
	mid := Compose(fg, 0.5, bg)
	if mid == fg || mid == bg {
		t.Fatal("partial opacity must blend")
	}
}
