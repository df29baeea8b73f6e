package tui

import (
	"github.com/paulmach/orb"

	"foodmap/internal/geom"
)

// layout is the shared layout math between View and the mouse handler, so
// pointer coordinates and rendered cells always agree.
type layout struct {
	sidebarW   int
	contentW   int
	contentH   int
	mapW, mapH int
	mapOriginX int
	mapOriginY int
}

func (m Model) layout() layout {
	var lo layout
	if m.showSidebar {
		lo.sidebarW = 28
	}
	headerHeight := 1
	footerHeight := 2
	lo.contentH = m.height - headerHeight - footerHeight
	if lo.contentH < 4 {
		lo.contentH = 4
	}
	lo.contentW = max(10, m.width)
	lo.mapW = lo.contentW - lo.sidebarW
	if m.showSidebar {
		lo.mapW--
	}
	if lo.mapW < 10 {
		lo.mapW = 10
	}
	lo.mapH = lo.contentH
	lo.mapOriginX = lo.sidebarW
	if m.showSidebar {
		lo.mapOriginX++
	}
	lo.mapOriginY = headerHeight
	return lo
}

// centerOn pans the viewport so the point sits at the map center.
func (m *Model) centerOn(p orb.Point) {
	if m.vp == nil || m.mapW == 0 || m.mapH == 0 {
		return
	}
	m.vp.OffsetX, m.vp.OffsetY = 0, 0
	mx, my, ok := m.vp.MicroXY(p[0], p[1], m.mapW, m.mapH)
	if !ok {
		return
	}
	m.vp.OffsetX = (m.mapW*geom.MicroPerCellX/2 - mx) / geom.MicroPerCellX
	m.vp.OffsetY = (m.mapH*geom.MicroPerCellY/2 - my) / geom.MicroPerCellY
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
