package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"foodmap/internal/geom"
	"foodmap/internal/surface"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lo := m.layout()

	// Header
	title := " foodmap ─ food access explorer "
	if m.synthetic {
		title += dimStyle.Render("(placeholder data) ")
	}
	header := titleStyle.Render(title)
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	// Map viewport
	var mapView string
	if m.showAttrs {
		m.tbl.SetWidth(min(lo.mapW-4, 52))
		m.tbl.SetHeight(min(lo.mapH-2, 18))
		attrsBox := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(lo.mapW, lo.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	} else {
		mapView = lipgloss.NewStyle().Width(lo.mapW).Height(lo.mapH).Render(m.renderMap(lo))
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  %s  lon=%.5f lat=%.5f  ",
			m.cursorGlyph(), m.hoverLon, m.hoverLat))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderMap composites basemap, overlay, and tooltip into one cell canvas.
func (m Model) renderMap(lo layout) string {
	if !m.guard.Ready() || m.basemap == nil {
		return dimStyle.Render(" measuring… ")
	}
	c := surface.NewCanvas(lo.mapW, lo.mapH)
	m.basemap.RenderInto(c)
	m.overlay.RenderInto(c)
	if m.tips.Visible() {
		left, top, w, h := m.tips.Bounds()
		c.DrawBox(
			left/geom.MicroPerCellX, top/geom.MicroPerCellY,
			w/geom.MicroPerCellX, h/geom.MicroPerCellY,
			m.tips.Lines(), "#E6E6E6")
	}
	return strings.Join(c.Rows(), "\n")
}

func (m Model) cursorGlyph() string {
	if m.router == nil {
		return " "
	}
	switch m.router.Cursor() {
	case "crosshair":
		return "+"
	case "pointer":
		return "➤"
	case "grabbing":
		return "✊"
	}
	return "·"
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"m mode",
		"1 markers",
		"t transit",
		"Tab browser",
		"a attrs",
		"r refresh",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
