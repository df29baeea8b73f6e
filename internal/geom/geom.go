package geom

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Braille glyphs pack a 2x4 dot matrix into each terminal cell, so both
// surfaces address the map in "micro-pixel" coordinates at that resolution.
const (
	MicroPerCellX = 2
	MicroPerCellY = 4
)

// Viewport maps lon/lat onto the micro-pixel grid with zoom applied around
// the center of the data bound and panning in whole cells. Both the basemap
// and the overlay project through the same viewport, which is what makes a
// single hit-test coordinate space possible.
type Viewport struct {
	Bound   orb.Bound
	Zoom    float64
	OffsetX int
	OffsetY int
}

func NewViewport(b orb.Bound) *Viewport {
	return &Viewport{Bound: b, Zoom: 1.0}
}

func (v *Viewport) valid() bool {
	return v.Bound.Max[0] > v.Bound.Min[0] && v.Bound.Max[1] > v.Bound.Min[1]
}

// MicroXY maps lon/lat into the 2x4 microgrid of a w x h cell canvas.
func (v *Viewport) MicroXY(lon, lat float64, w, h int) (int, int, bool) {
	if !v.valid() || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	nx := (lon - v.Bound.Min[0]) / (v.Bound.Max[0] - v.Bound.Min[0])
	ny := (lat - v.Bound.Min[1]) / (v.Bound.Max[1] - v.Bound.Min[1])
	zx := 0.5 + (nx-0.5)*v.Zoom
	zy := 0.5 + (ny-0.5)*v.Zoom
	wMic := w * MicroPerCellX
	hMic := h * MicroPerCellY
	sx := int(zx*float64(wMic-1)) + v.OffsetX*MicroPerCellX
	sy := int((1.0-zy)*float64(hMic-1)) + v.OffsetY*MicroPerCellY
	return sx, sy, true
}

// CellXY maps lon/lat to cell coordinates.
func (v *Viewport) CellXY(lon, lat float64, w, h int) (int, int, bool) {
	mx, my, ok := v.MicroXY(lon, lat, w, h)
	if !ok {
		return 0, 0, false
	}
	return mx / MicroPerCellX, my / MicroPerCellY, true
}

// MicroToLonLat inverts MicroXY for hit-testing: a pointer position on the
// canvas becomes a geographic coordinate.
func (v *Viewport) MicroToLonLat(mx, my, w, h int) (float64, float64, bool) {
	if !v.valid() || w <= 0 || h <= 0 || v.Zoom == 0 {
		return 0, 0, false
	}
	wMic := w * MicroPerCellX
	hMic := h * MicroPerCellY
	if wMic <= 1 || hMic <= 1 {
		return 0, 0, false
	}
	zx := float64(mx-v.OffsetX*MicroPerCellX) / float64(wMic-1)
	zy := 1.0 - float64(my-v.OffsetY*MicroPerCellY)/float64(hMic-1)
	nx := 0.5 + (zx-0.5)/v.Zoom
	ny := 0.5 + (zy-0.5)/v.Zoom
	lon := v.Bound.Min[0] + nx*(v.Bound.Max[0]-v.Bound.Min[0])
	lat := v.Bound.Min[1] + ny*(v.Bound.Max[1]-v.Bound.Min[1])
	return lon, lat, true
}

// ContainsPoint reports whether the geometry covers the point, after a cheap
// bound check.
func ContainsPoint(g orb.Geometry, p orb.Point) bool {
	if g == nil || !g.Bound().Contains(p) {
		return false
	}
	switch geo := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(geo, p)
	case orb.MultiPolygon:
		return planar.MultiPolygonContains(geo, p)
	}
	return false
}

const earthRadiusM = 6371000.0

// Haversine returns the great-circle distance between two points in meters.
func Haversine(a, b orb.Point) float64 {
	phi1 := a[1] * math.Pi / 180
	phi2 := b[1] * math.Pi / 180
	dPhi := (b[1] - a[1]) * math.Pi / 180
	dLam := (b[0] - a[0]) * math.Pi / 180
	s := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLam/2)*math.Sin(dLam/2)
	return 2 * earthRadiusM * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))
}

// FormatDistance renders meters below 1 km and kilometers above.
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}

// Clamp01 pins a metric to [0,1]; out-of-range fetched values are clamped at
// ingestion, never propagated.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
