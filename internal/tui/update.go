package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"foodmap/internal/config"
	"foodmap/internal/geom"
	"foodmap/internal/interact"
	"foodmap/internal/surface"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lo := m.layout()
		if m.guard.Observe(lo.mapW, lo.mapH) {
			m.buildSurfaces(lo.mapW, lo.mapH)
		} else if m.guard.Ready() {
			m.resizeSurfaces(lo.mapW, lo.mapH)
		}
		if m.showSidebar {
			m.l.SetSize(28-2, lo.contentH-2)
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		// Keys the map consumes return immediately so the list never sees
		// them; with the sidebar open, arrows and enter belong to the list.
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "m":
			if m.mode == config.ModeChoropleth {
				m.mode = config.ModeGhost
			} else {
				m.mode = config.ModeChoropleth
			}
			if m.basemap != nil {
				m.basemap.SetExpression(m.expression())
			}
			m.status = "mode: " + m.mode
			return m, nil
		case "1":
			if m.overlay != nil {
				m.status = "markers: " + onOff(m.overlay.ToggleMarkers())
			}
			return m, nil
		case "t":
			if m.overlay != nil {
				m.status = "transit: " + onOff(m.overlay.ToggleStops())
			}
			return m, nil
		case "+", "=":
			if m.vp != nil && m.vp.Zoom < 64 {
				m.vp.Zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.vp.Zoom)
			}
			return m, nil
		case "-", "_":
			if m.vp != nil && m.vp.Zoom > 0.05 {
				m.vp.Zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.vp.Zoom)
			}
			return m, nil
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshBrowser()
				m.l.SetSize(28-2, m.height-1-2)
			}
			lo := m.layout()
			if m.guard.Ready() {
				m.resizeSurfaces(lo.mapW, lo.mapH)
			}
			return m, nil
		case "a":
			if !m.hasSelection {
				m.status = "no tract selected"
				return m, nil
			}
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsTable()
			}
			return m, nil
		case "r":
			m.loadData()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
			return m, nil
		case "esc":
			if m.showAttrs {
				m.showAttrs = false
				return m, nil
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(resourceItem); ok {
					m.centerOn(it.point)
					m.status = "centered: " + it.title
				}
				return m, nil
			}
		case "up", "down", "left", "right":
			if m.showSidebar {
				break
			}
			if m.vp != nil {
				switch msg.String() {
				case "up":
					m.vp.OffsetY -= 1
				case "down":
					m.vp.OffsetY += 1
				case "left":
					m.vp.OffsetX -= 2
				case "right":
					m.vp.OffsetX += 2
				}
			}
			return m, nil
		}
	case tea.MouseMsg:
		m = m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse maps a terminal mouse event into the shared micro-pixel space
// and hands it to the pointer router. Events land on the overlay only; the
// router fans them out to both surfaces.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if !m.guard.Ready() || m.router == nil {
		return m
	}
	lo := m.layout()
	cx, cy := msg.X, msg.Y
	inside := cx >= lo.mapOriginX && cx < lo.mapOriginX+lo.mapW &&
		cy >= lo.mapOriginY && cy < lo.mapOriginY+lo.mapH
	if !inside {
		if m.hovering {
			m.router.OnLeave()
			m.hovering = false
			m.hoverHasGeo = false
		}
		return m
	}

	// Micro coordinate at the center of the hovered cell.
	hx := (cx-lo.mapOriginX)*geom.MicroPerCellX + geom.MicroPerCellX/2
	hy := (cy-lo.mapOriginY)*geom.MicroPerCellY + geom.MicroPerCellY/2
	m.hovering = true
	if lon, lat, ok := m.vp.MicroToLonLat(hx, hy, lo.mapW, lo.mapH); ok {
		m.hoverHasGeo = true
		m.hoverLon, m.hoverLat = lon, lat
	} else {
		m.hoverHasGeo = false
	}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.router.OnHover(hx, hy)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		var picked *surface.Pick
		m.router.OnPickPoint = func(p surface.Pick) { picked = &p }
		m.router.OnClick(hx, hy)
		m.router.OnPickPoint = nil
		m = m.afterClick(picked)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if m.vp.Zoom < 64 {
			m.vp.Zoom *= 1.2
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if m.vp.Zoom > 0.05 {
			m.vp.Zoom /= 1.2
		}
	}
	return m
}

// afterClick pulls the click outcome out of the interaction layer into the
// host's own registers: selection record, attribute table, status line.
func (m Model) afterClick(picked *surface.Pick) Model {
	if picked != nil {
		switch picked.Kind {
		case surface.PickMarker:
			m.status = "marker: " + picked.Entity.Name
		case surface.PickStop:
			m.status = "stop: " + picked.Stop.Name
		}
		return m
	}
	id := m.syncer.Selected()
	if id == interact.None {
		m.hasSelection = false
		m.showAttrs = false
		m.status = "selection cleared"
		return m
	}
	attrs, ok := m.basemap.Attributes(id)
	if !ok {
		return m
	}
	m.selected = attrs
	m.hasSelection = true
	if m.showAttrs {
		m.refreshAttrsTable()
	}
	m.status = fmt.Sprintf("selected: %s (risk %.2f)", attrs.Name, attrs.Risk)
	return m
}
