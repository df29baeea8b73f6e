package interact

import (
	"foodmap/internal/surface"
	"foodmap/internal/tract"
)

// PolygonLayer is the queryable side of the basemap.
type PolygonLayer interface {
	QueryPoint(mx, my int) (int, bool)
	Attributes(id int) (tract.Attributes, bool)
}

// PointLayer is the pickable side of the overlay.
type PointLayer interface {
	Pick(mx, my int) (surface.Pick, bool)
}

// Router turns pointer positions into hover, selection, and tooltip
// transitions. The overlay owns the input stream, so every event arrives
// here once and fans out to both layers: the point pick and the polygon
// hit-test always both run on movement, and on click a picked point
// feature suppresses polygon selection.
type Router struct {
	polys PolygonLayer
	pts   PointLayer
	sync  *Synchronizer
	tips  *Tooltip

	pick     surface.Pick
	dragging bool

	// OnHoverTract fires when the hovered tract changes; ok is false when
	// the pointer left every tract.
	OnHoverTract func(attrs tract.Attributes, ok bool)
	// OnSelectTract fires on a click that lands on a tract and on no point
	// feature.
	OnSelectTract func(attrs tract.Attributes)
	// OnPickPoint fires on a click that lands on a marker or stop.
	OnPickPoint func(p surface.Pick)
}

func NewRouter(polys PolygonLayer, pts PointLayer, sync *Synchronizer, tips *Tooltip) *Router {
	return &Router{polys: polys, pts: pts, sync: sync, tips: tips}
}

// OnHover handles pointer movement at a micro-pixel coordinate.
func (r *Router) OnHover(mx, my int) {
	pick, picked := r.pts.Pick(mx, my)
	id, hit := r.polys.QueryPoint(mx, my)

	r.pick = surface.Pick{}
	if picked {
		r.pick = pick
	}

	prev := r.sync.Hovered()
	if hit {
		r.sync.SetHover(id)
	} else {
		r.sync.SetHover(None)
	}

	switch {
	case picked && pick.Kind == surface.PickMarker:
		r.tips.ShowMarker(pick.Entity, mx, my)
	case picked && pick.Kind == surface.PickStop:
		r.tips.ShowStop(pick.Stop, mx, my)
	case hit:
		if attrs, ok := r.polys.Attributes(id); ok {
			r.tips.ShowTract(attrs, mx, my)
		}
	default:
		r.tips.Hide()
	}

	if r.OnHoverTract != nil && r.sync.Hovered() != prev {
		if hit {
			attrs, ok := r.polys.Attributes(id)
			r.OnHoverTract(attrs, ok)
		} else {
			r.OnHoverTract(tract.Attributes{}, false)
		}
	}
}

// OnClick handles a primary-button press at a micro-pixel coordinate.
func (r *Router) OnClick(mx, my int) {
	if pick, ok := r.pts.Pick(mx, my); ok {
		r.pick = pick
		if r.OnPickPoint != nil {
			r.OnPickPoint(pick)
		}
		return
	}
	id, hit := r.polys.QueryPoint(mx, my)
	if !hit {
		r.sync.SetSelected(None)
		return
	}
	r.sync.SetSelected(id)
	if r.OnSelectTract != nil {
		if attrs, ok := r.polys.Attributes(id); ok {
			r.OnSelectTract(attrs)
		}
	}
}

// OnLeave handles the pointer leaving the map area. It clears hover state
// unconditionally; selection survives.
func (r *Router) OnLeave() {
	r.pick = surface.Pick{}
	r.dragging = false
	r.sync.SetHover(None)
	r.tips.Hide()
	if r.OnHoverTract != nil {
		r.OnHoverTract(tract.Attributes{}, false)
	}
}

func (r *Router) SetDragging(on bool) { r.dragging = on }

// Cursor reports the pointer shape: dragging beats a point-feature hover,
// which beats the tract crosshair.
func (r *Router) Cursor() string {
	switch {
	case r.dragging:
		return "grabbing"
	case r.pick.Kind != surface.PickNone:
		return "pointer"
	case r.sync.Hovered() != None:
		return "crosshair"
	}
	return "default"
}
