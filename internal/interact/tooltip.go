package interact

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"foodmap/internal/geom"
	"foodmap/internal/tract"
)

// Tooltip placement constants, in micro-pixels.
const (
	tipOffset = 14 // horizontal gap between the cursor and the panel
	tipMargin = 4  // minimum distance from any container edge
)

// Fixed panel sizes per variant, in micro-pixels.
const (
	markerPanelW = 60
	markerPanelH = 28
	stopPanelW   = 52
	stopPanelH   = 20
	tractPanelW  = 48
	tractPanelH  = 20
)

// Kind discriminates tooltip content.
type Kind int

const (
	KindNone Kind = iota
	KindMarker
	KindStop
	KindTract
)

// Tooltip holds the single tooltip slot. Showing a new subject replaces the
// previous one wholesale, so the panel never mixes content from two
// features.
type Tooltip struct {
	w, h int // container size in micro-pixels
	ref  orb.Point

	kind   Kind
	entity *tract.PointEntity
	stop   *tract.TransitStop
	attrs  tract.Attributes
	cx, cy int
}

func NewTooltip(ref orb.Point) *Tooltip {
	return &Tooltip{ref: ref}
}

func (t *Tooltip) SetContainer(wMic, hMic int) {
	t.w, t.h = wMic, hMic
}

func (t *Tooltip) ShowMarker(e *tract.PointEntity, cx, cy int) {
	t.kind, t.entity, t.stop = KindMarker, e, nil
	t.cx, t.cy = cx, cy
}

func (t *Tooltip) ShowStop(s *tract.TransitStop, cx, cy int) {
	t.kind, t.stop, t.entity = KindStop, s, nil
	t.cx, t.cy = cx, cy
}

func (t *Tooltip) ShowTract(attrs tract.Attributes, cx, cy int) {
	t.kind, t.attrs = KindTract, attrs
	t.entity, t.stop = nil, nil
	t.cx, t.cy = cx, cy
}

func (t *Tooltip) Hide() {
	t.kind = KindNone
	t.entity, t.stop = nil, nil
}

func (t *Tooltip) Kind() Kind    { return t.kind }
func (t *Tooltip) Visible() bool { return t.kind != KindNone }

func (t *Tooltip) panelSize() (int, int) {
	switch t.kind {
	case KindMarker:
		return markerPanelW, markerPanelH
	case KindStop:
		return stopPanelW, stopPanelH
	case KindTract:
		return tractPanelW, tractPanelH
	}
	return 0, 0
}

// Bounds returns the placed panel rectangle in micro-pixels.
func (t *Tooltip) Bounds() (left, top, w, h int) {
	w, h = t.panelSize()
	left, top = Place(t.cx, t.cy, w, h, t.w, t.h)
	return left, top, w, h
}

// Place positions a panel beside the cursor: offset to the right,
// vertically centered, then clamped inside the container with a fixed edge
// margin. When the container is too small for the margin on both sides, the
// panel pins to the leading edge.
func Place(cx, cy, panelW, panelH, containerW, containerH int) (left, top int) {
	left = clampRange(cx+tipOffset, tipMargin, containerW-panelW-tipMargin)
	top = clampRange(cy-panelH/2, tipMargin, containerH-panelH-tipMargin)
	return left, top
}

func clampRange(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lines projects the current subject into display lines for the panel.
func (t *Tooltip) Lines() []string {
	switch t.kind {
	case KindMarker:
		return t.markerLines()
	case KindStop:
		return t.stopLines()
	case KindTract:
		return t.tractLines()
	}
	return nil
}

func (t *Tooltip) markerLines() []string {
	e := t.entity
	price := e.Pricing.TierLabel
	if e.Pricing.Label != "" {
		price = fmt.Sprintf("%s · %s", e.Pricing.TierLabel, e.Pricing.Label)
	}
	lines := []string{
		e.Name,
		price,
		priceDots(e.Pricing.Dots),
		geom.FormatDistance(geom.Haversine(t.ref, e.Point)) + " away",
	}
	if tags := e.Tags(); len(tags) > 0 {
		lines = append(lines, strings.Join(tags, " · "))
	}
	return lines
}

func (t *Tooltip) stopLines() []string {
	s := t.stop
	lines := []string{s.Name + " Station"}
	if len(s.Lines) > 0 {
		lines = append(lines, strings.Join(s.Lines, ", ")+" Line")
	}
	lines = append(lines, geom.FormatDistance(geom.Haversine(t.ref, s.Point))+" away")
	return lines
}

func (t *Tooltip) tractLines() []string {
	a := t.attrs
	lines := []string{
		a.Name,
		fmt.Sprintf("Risk %.2f · Equity %.2f", a.Risk, a.Equity),
	}
	if a.Desert {
		lines = append(lines, "Low access area")
	}
	return lines
}

// priceDots renders a 0..5 score as filled and hollow dots.
func priceDots(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 5 {
		n = 5
	}
	return strings.Repeat("●", n) + strings.Repeat("○", 5-n)
}
