package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/paulmach/orb"

	"foodmap/internal/config"
	"foodmap/internal/geom"
	"foodmap/internal/interact"
	"foodmap/internal/paint"
	"foodmap/internal/surface"
	"foodmap/internal/tract"
)

type resourceItem struct {
	title, desc string
	point       orb.Point
}

func (r resourceItem) Title() string       { return r.title }
func (r resourceItem) Description() string { return r.desc }
func (r resourceItem) FilterValue() string { return r.title }

// loadData pulls all three datasets through the source and applies them in
// place. On refresh, surviving tracts keep their ids and flags; ids of
// dropped tracts are cleared from the synchronizer.
func (m *Model) loadData() {
	fc, synthetic, err := m.src.Tracts()
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.synthetic = synthetic
	removed := m.idx.Apply(fc)
	if m.syncer != nil {
		m.syncer.DropRemoved(removed)
	}

	entities, _, err := m.src.Resources()
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.entities = entities

	stops, err := m.src.Stops()
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.stops = stops

	if m.overlay != nil {
		m.overlay.SetEntities(m.entities)
		m.overlay.SetStops(m.stops)
	}
	m.refreshBrowser()

	src := "files"
	if m.synthetic {
		src = "placeholder data"
	}
	m.status = fmt.Sprintf("loaded: tracts=%d resources=%d stops=%d (%s)",
		m.idx.Len(), len(m.entities), len(m.stops), src)
}

func (m *Model) refreshBrowser() {
	ref := m.src.Reference
	items := make([]list.Item, 0, len(m.entities))
	for _, e := range m.entities {
		dist := geom.FormatDistance(geom.Haversine(ref, e.Point))
		desc := fmt.Sprintf("%s · %s", m.pricingSummary(e), dist)
		items = append(items, resourceItem{title: e.Name, desc: desc, point: e.Point})
	}
	m.items = items
	m.l.SetItems(items)
}

func (m Model) pricingSummary(e tract.PointEntity) string {
	tier := string(e.Pricing.Category)
	if e.Pricing.Label != "" {
		return tier + " " + e.Pricing.Label
	}
	return tier
}

// buildSurfaces constructs both render surfaces and the interaction wiring.
// Runs exactly once, on the first non-zero measured map size.
func (m *Model) buildSurfaces(w, h int) {
	b := m.idx.Bound()
	padX := (b.Max[0] - b.Min[0]) * 0.05
	padY := (b.Max[1] - b.Min[1]) * 0.05
	b.Min[0] -= padX
	b.Max[0] += padX
	b.Min[1] -= padY
	b.Max[1] += padY
	m.vp = geom.NewViewport(b)

	bg, _ := colorful.Hex("#0B0F14")
	m.basemap = surface.NewBasemap(m.idx, m.vp, m.expression(), bg, w, h)
	m.overlay = surface.NewOverlay(m.entities, m.stops, m.vp, w, h)

	m.tips = interact.NewTooltip(m.src.Reference)
	m.tips.SetContainer(w*geom.MicroPerCellX, h*geom.MicroPerCellY)
	m.syncer = interact.NewSynchronizer(m.basemap)
	m.router = interact.NewRouter(m.basemap, m.overlay, m.syncer, m.tips)
	m.mapW, m.mapH = w, h
}

func (m *Model) resizeSurfaces(w, h int) {
	m.basemap.Resize(w, h)
	m.overlay.Resize(w, h)
	m.tips.SetContainer(w*geom.MicroPerCellX, h*geom.MicroPerCellY)
	m.mapW, m.mapH = w, h
}

func (m Model) expression() paint.Expression {
	if m.mode == config.ModeGhost {
		return paint.Ghost()
	}
	return paint.Choropleth()
}
