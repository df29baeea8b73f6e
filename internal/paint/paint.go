// Package paint compiles attribute values and interaction flags into
// renderer-level visual rules. Expressions are built once; the surfaces
// evaluate them per feature, per frame, so a hover or selection change never
// resubmits feature data or re-renders the host UI.
package paint

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Flags are the renderer-owned interaction flags of one polygon feature.
type Flags struct {
	Hovered  bool
	Selected bool
}

// Expression is a compiled set of visual rules for the polygon layer.
type Expression struct {
	// FillColor interpolates the risk metric through the ramp.
	FillColor func(risk float64) colorful.Color
	// FillOpacity is keyed on the interaction flags.
	FillOpacity func(f Flags) float64
	// Border rules. Width is in pixel units.
	LineColor   func(f Flags) colorful.Color
	LineWidth   func(f Flags) float64
	LineOpacity func(f Flags) float64
	// Queryable marks the layer as a hit-test target even when invisible.
	Queryable bool
}

// RampStop pairs a risk breakpoint with a color.
type RampStop struct {
	Value float64
	Color colorful.Color
}

// Ramp is a continuous multi-stop color interpolation.
type Ramp struct {
	Stops []RampStop
}

// At evaluates the ramp at v, clamping outside the stop range.
func (r Ramp) At(v float64) colorful.Color {
	stops := r.Stops
	if len(stops) == 0 {
		return colorful.Color{}
	}
	if v <= stops[0].Value {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if v >= last.Value {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if v == stops[i].Value {
			return stops[i].Color
		}
		if v < stops[i].Value {
			a, b := stops[i-1], stops[i]
			t := (v - a.Value) / (b.Value - a.Value)
			return a.Color.BlendLab(b.Color, t).Clamped()
		}
	}
	return last.Color
}

func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// Risk ramp breakpoints: low, moderate, high, critical.
var riskRamp = Ramp{Stops: []RampStop{
	{0.0, hex("#22c55e")},
	{0.35, hex("#eab308")},
	{0.6, hex("#f59e0b")},
	{1.0, hex("#ef4444")},
}}

var (
	accentColor = hex("#7C3AED")
	nearWhite   = hex("#F2F2F2")
)

// Choropleth compiles the risk-colored fill variant.
func Choropleth() Expression {
	return Expression{
		FillColor: riskRamp.At,
		FillOpacity: func(f Flags) float64 {
			switch {
			case f.Selected:
				return 0.85
			case f.Hovered:
				return 0.75
			default:
				return 0.60
			}
		},
		LineColor: func(f Flags) colorful.Color {
			switch {
			case f.Selected:
				return accentColor
			case f.Hovered:
				return nearWhite
			default:
				return nearWhite
			}
		},
		LineWidth: func(f Flags) float64 {
			switch {
			case f.Selected:
				return 3
			case f.Hovered:
				return 2
			default:
				return 0.8
			}
		},
		// Resting borders default to full opacity in the renderer, which
		// overwhelms the fill ramp; dim them explicitly.
		LineOpacity: func(f Flags) float64 {
			if f.Selected || f.Hovered {
				return 1.0
			}
			return 0.3
		},
		Queryable: true,
	}
}

// Ghost compiles the near-invisible fill variant: the polygon layer stays
// queryable for hit-testing while point markers carry the visual weight.
func Ghost() Expression {
	transparent := hex("#000000")
	base := Choropleth()
	return Expression{
		FillColor:   func(float64) colorful.Color { return transparent },
		FillOpacity: func(Flags) float64 { return 0.01 },
		LineColor:   base.LineColor,
		LineWidth: func(f Flags) float64 {
			if f.Selected || f.Hovered {
				return base.LineWidth(f)
			}
			return 0
		},
		LineOpacity: base.LineOpacity,
		Queryable:   true,
	}
}

// Compose blends a foreground color toward the background at the given
// opacity. Terminal cells have no alpha channel, so fill opacity is emulated
// at paint time.
func Compose(fg colorful.Color, opacity float64, bg colorful.Color) colorful.Color {
	if opacity >= 1 {
		return fg
	}
	if opacity <= 0 {
		return bg
	}
	return bg.BlendRgb(fg, opacity).Clamped()
}
