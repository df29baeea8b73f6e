package surface

import (
	"foodmap/internal/geom"
	"foodmap/internal/tract"
)

// pickRadius is the hit slop around a marker glyph, in micro-pixels.
const pickRadius = 4

// PickKind discriminates what the overlay resolved under the pointer.
type PickKind int

const (
	PickNone PickKind = iota
	PickMarker
	PickStop
)

// Pick is the result of an overlay hit-test.
type Pick struct {
	Kind   PickKind
	Entity *tract.PointEntity
	Stop   *tract.TransitStop
}

// Overlay renders the point layers above the basemap: resource markers and
// transit stops. It also resolves pointer hits against them; when a marker
// and a stop are both in range, the marker wins.
type Overlay struct {
	entities []tract.PointEntity
	stops    []tract.TransitStop
	vp       *geom.Viewport
	w, h     int

	showMarkers bool
	showStops   bool
}

func NewOverlay(entities []tract.PointEntity, stops []tract.TransitStop, vp *geom.Viewport, w, h int) *Overlay {
	return &Overlay{
		entities:    entities,
		stops:       stops,
		vp:          vp,
		w:           w,
		h:           h,
		showMarkers: true,
	}
}

func (o *Overlay) Resize(w, h int) {
	o.w, o.h = w, h
}

func (o *Overlay) SetEntities(entities []tract.PointEntity) {
	o.entities = entities
}

func (o *Overlay) SetStops(stops []tract.TransitStop) {
	o.stops = stops
}

func (o *Overlay) ToggleMarkers() bool {
	o.showMarkers = !o.showMarkers
	return o.showMarkers
}

func (o *Overlay) ToggleStops() bool {
	o.showStops = !o.showStops
	return o.showStops
}

func (o *Overlay) MarkersShown() bool { return o.showMarkers }
func (o *Overlay) StopsShown() bool   { return o.showStops }

// Pick resolves the nearest visible point feature within pickRadius of the
// micro-pixel coordinate. Markers take priority over stops at equal reach.
func (o *Overlay) Pick(mx, my int) (Pick, bool) {
	if o == nil {
		return Pick{}, false
	}
	best := Pick{}
	bestDist := pickRadius*pickRadius + 1
	if o.showMarkers {
		for i := range o.entities {
			e := &o.entities[i]
			ex, ey, ok := o.vp.MicroXY(e.Point[0], e.Point[1], o.w, o.h)
			if !ok {
				continue
			}
			d := sqDist(mx, my, ex, ey)
			if d < bestDist {
				bestDist = d
				best = Pick{Kind: PickMarker, Entity: e}
			}
		}
	}
	if o.showStops {
		for i := range o.stops {
			s := &o.stops[i]
			sx, sy, ok := o.vp.MicroXY(s.Point[0], s.Point[1], o.w, o.h)
			if !ok {
				continue
			}
			d := sqDist(mx, my, sx, sy)
			if d < bestDist {
				bestDist = d
				best = Pick{Kind: PickStop, Stop: s}
			}
		}
	}
	return best, best.Kind != PickNone
}

// RenderInto draws the point layers as glyph cells on top of the basemap.
// Stops first so markers cover them on overlap.
func (o *Overlay) RenderInto(c *Canvas) {
	if o == nil {
		return
	}
	if o.showStops {
		for i := range o.stops {
			s := &o.stops[i]
			mx, my, ok := o.vp.MicroXY(s.Point[0], s.Point[1], o.w, o.h)
			if !ok {
				continue
			}
			c.Set(mx/geom.MicroPerCellX, my/geom.MicroPerCellY, Cell{R: '◇', FG: "#06b6d4"})
		}
	}
	if o.showMarkers {
		for i := range o.entities {
			e := &o.entities[i]
			mx, my, ok := o.vp.MicroXY(e.Point[0], e.Point[1], o.w, o.h)
			if !ok {
				continue
			}
			c.Set(mx/geom.MicroPerCellX, my/geom.MicroPerCellY, Cell{
				R:    e.Pricing.Glyph,
				FG:   e.Pricing.HexColor,
				Bold: true,
			})
		}
	}
}

func sqDist(x0, y0, x1, y1 int) int {
	dx, dy := x1-x0, y1-y0
	return dx*dx + dy*dy
}
