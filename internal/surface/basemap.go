package surface

import (
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"foodmap/internal/geom"
	"foodmap/internal/paint"
	"foodmap/internal/tract"
)

// Basemap renders the tract choropleth and owns the per-feature interaction
// flags. It exposes the feature-state handle and the spatial query; it never
// sees raw input events, those belong to the overlay above it.
type Basemap struct {
	idx   *tract.Index
	vp    *geom.Viewport
	expr  paint.Expression
	bg    colorful.Color
	state *stateStore
	w, h  int
}

// NewBasemap constructs the surface. Callers construct it only after the
// Guard reports a non-zero container size.
func NewBasemap(idx *tract.Index, vp *geom.Viewport, expr paint.Expression, bg colorful.Color, w, h int) *Basemap {
	return &Basemap{
		idx:   idx,
		vp:    vp,
		expr:  expr,
		bg:    bg,
		state: newStateStore(),
		w:     w,
		h:     h,
	}
}

func (b *Basemap) Resize(w, h int) {
	b.w, b.h = w, h
}

// SetExpression swaps the compiled paint rules (choropleth vs ghost).
func (b *Basemap) SetExpression(expr paint.Expression) {
	b.expr = expr
}

// SetHovered and SetSelected are the renderer-owned state handle: direct
// mutations consumed by the paint expressions on the next frame, with no
// host re-render in between.
func (b *Basemap) SetHovered(id int, on bool) {
	if b == nil {
		return
	}
	b.state.setHovered(id, on)
}

func (b *Basemap) SetSelected(id int, on bool) {
	if b == nil {
		return
	}
	b.state.setSelected(id, on)
}

func (b *Basemap) Flags(id int) paint.Flags {
	if b == nil {
		return paint.Flags{}
	}
	return b.state.flags(id)
}

// FlaggedHovered reports how many features carry the hover flag.
func (b *Basemap) FlaggedHovered() int {
	if b == nil {
		return 0
	}
	return b.state.flaggedHovered()
}

// QueryPoint hit-tests a micro-pixel coordinate against the polygon layer.
// A layer that is not yet initialized, is empty, or is not queryable
// resolves to a miss, never an error.
func (b *Basemap) QueryPoint(mx, my int) (int, bool) {
	if b == nil || b.idx == nil || b.idx.Len() == 0 || !b.expr.Queryable {
		return 0, false
	}
	lon, lat, ok := b.vp.MicroToLonLat(mx, my, b.w, b.h)
	if !ok {
		return 0, false
	}
	f, ok := b.idx.At(orb.Point{lon, lat})
	if !ok {
		return 0, false
	}
	return f.ID, true
}

// Attributes resolves a renderer id to its attribute record.
func (b *Basemap) Attributes(id int) (tract.Attributes, bool) {
	if b == nil || b.idx == nil {
		return tract.Attributes{}, false
	}
	f, ok := b.idx.Get(id)
	if !ok {
		return tract.Attributes{}, false
	}
	return f.Attrs, true
}

// RenderInto paints the choropleth into the canvas: fills first, resting
// borders next, highlighted borders last so hover and selection rings stay
// on top.
func (b *Basemap) RenderInto(c *Canvas) {
	if b == nil || b.idx == nil {
		return
	}
	layer := newMicroLayer(c.W, c.H)
	var highlighted []*tract.Feature
	for _, f := range b.idx.Features() {
		flags := b.state.flags(f.ID)
		b.fillFeature(layer, f, flags)
		if flags.Hovered || flags.Selected {
			highlighted = append(highlighted, f)
			continue
		}
		b.strokeFeature(layer, f, flags)
	}
	for _, f := range highlighted {
		b.strokeFeature(layer, f, b.state.flags(f.ID))
	}
	layer.compositeInto(c)
}

func (b *Basemap) fillFeature(layer *microLayer, f *tract.Feature, flags paint.Flags) {
	opacity := b.expr.FillOpacity(flags)
	if opacity <= 0.02 {
		return
	}
	fg := paint.Compose(b.expr.FillColor(f.Attrs.Risk), opacity, b.bg).Hex()
	for _, poly := range polygonsOf(f.Geometry) {
		if len(poly) == 0 {
			continue
		}
		b.scanlineFill(layer, poly[0], fg)
	}
}

func (b *Basemap) strokeFeature(layer *microLayer, f *tract.Feature, flags paint.Flags) {
	width := int(b.expr.LineWidth(flags) + 0.5)
	if width < 1 && b.expr.LineWidth(flags) <= 0 {
		return
	}
	if width < 1 {
		width = 1
	}
	fg := paint.Compose(b.expr.LineColor(flags), b.expr.LineOpacity(flags), b.bg).Hex()
	for _, poly := range polygonsOf(f.Geometry) {
		for _, ring := range poly {
			pts := b.projectRing(ring)
			for i := 0; i < len(pts); i++ {
				a := pts[i]
				z := pts[(i+1)%len(pts)]
				layer.drawLine(a[0], a[1], z[0], z[1], fg, width)
			}
		}
	}
}

// scanlineFill fills the outer ring on the microgrid using the even-odd
// rule per scanline (holes ignored).
func (b *Basemap) scanlineFill(layer *microLayer, outer orb.Ring, fg string) {
	pts := b.projectRing(outer)
	if len(pts) < 3 {
		return
	}
	hMic := layer.h * geom.MicroPerCellY
	for yMic := 0; yMic < hMic; yMic++ {
		var xs []int
		for i := 0; i < len(pts); i++ {
			a := pts[i]
			z := pts[(i+1)%len(pts)]
			if a[1] == z[1] { // horizontal edge: skip
				continue
			}
			if (yMic >= a[1] && yMic < z[1]) || (yMic >= z[1] && yMic < a[1]) {
				t := float64(yMic-a[1]) / float64(z[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(z[0]-a[0])))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lo, hi := xs[i], xs[i+1]
			if lo > hi {
				lo, hi = hi, lo
			}
			if lo < 0 {
				lo = 0
			}
			for x := lo; x <= hi; x++ {
				layer.setPixel(x, yMic, fg)
			}
		}
	}
}

func (b *Basemap) projectRing(ring orb.Ring) [][2]int {
	pts := make([][2]int, 0, len(ring))
	for _, p := range ring {
		mx, my, ok := b.vp.MicroXY(p[0], p[1], b.w, b.h)
		if !ok {
			continue
		}
		pts = append(pts, [2]int{mx, my})
	}
	return pts
}

func polygonsOf(g orb.Geometry) []orb.Polygon {
	switch geo := g.(type) {
	case orb.Polygon:
		return []orb.Polygon{geo}
	case orb.MultiPolygon:
		return geo
	}
	return nil
}
