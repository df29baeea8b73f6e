package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"foodmap/internal/config"
)

func sized(t *testing.T, w, h int) Model {
	t.Helper()
	m := New(config.Default())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestSurfacesBuildOnFirstMeasuredSize(t *testing.T) {
	m := sized(t, 100, 30)
	if m.basemap == nil || m.overlay == nil || m.router == nil {
		t.Fatal("surfaces not built after first window size")
	}
	lo := m.layout()
	if m.mapW != lo.mapW || m.mapH != lo.mapH {
		t.Fatalf("surface size %dx%d, layout %dx%d", m.mapW, m.mapH, lo.mapW, lo.mapH)
	}
	if m.idx.Len() == 0 {
		t.Fatal("no tract data loaded")
	}
}

func TestZeroSizeNeverBuildsSurfaces(t *testing.T) {
	m := New(config.Default())
	for _, wh := range [][2]int{{0, 0}, {100, 0}, {0, 30}} {
		updated, _ := m.Update(tea.WindowSizeMsg{Width: wh[0], Height: wh[1]})
		m = updated.(Model)
	}
	if m.basemap != nil || m.guard.Ready() {
		t.Fatal("surfaces built against a zero-area window")
	}
	// Mouse traffic before readiness must be a no-op, not a crash.
	updated, _ := m.Update(motion(5, 5))
	m = updated.(Model)
	if m.hovering {
		t.Fatal("hover recorded before surfaces exist")
	}
}

func TestMouseMotionDrivesHover(t *testing.T) {
	m := sized(t, 100, 30)
	lo := m.layout()
	cx := lo.mapOriginX + lo.mapW/2
	cy := lo.mapOriginY + lo.mapH/2

	updated, _ := m.Update(motion(cx, cy))
	m = updated.(Model)
	if !m.hovering || !m.hoverHasGeo {
		t.Fatal("motion over the map did not record hover")
	}
	if m.basemap.FlaggedHovered() != 1 {
		t.Fatalf("flagged hovered = %d, want 1", m.basemap.FlaggedHovered())
	}

	// Moving off the map clears the flag and the tooltip.
	updated, _ = m.Update(motion(cx, 0))
	m = updated.(Model)
	if m.hovering || m.basemap.FlaggedHovered() != 0 {
		t.Fatal("leaving the map did not clear hover state")
	}
	if m.tips.Visible() {
		t.Fatal("tooltip survived leave")
	}
}

func TestClickSelectsTract(t *testing.T) {
	m := sized(t, 100, 30)
	lo := m.layout()
	cx := lo.mapOriginX + lo.mapW/2
	cy := lo.mapOriginY + lo.mapH/2

	updated, _ := m.Update(click(cx, cy))
	m = updated.(Model)
	if !m.hasSelection {
		t.Fatal("click on a tract did not select it")
	}
	if m.selected.TractID == "" {
		t.Fatalf("selection record empty: %+v", m.selected)
	}
	if got := m.syncer.Selected(); got == 0 {
		t.Fatal("synchronizer has no selected id")
	}
}

func TestModeToggle(t *testing.T) {
	m := sized(t, 100, 30)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m = updated.(Model)
	if m.mode != config.ModeGhost {
		t.Fatalf("mode = %q after toggle", m.mode)
	}
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})
	m = updated.(Model)
	if m.mode != config.ModeChoropleth {
		t.Fatalf("mode = %q after second toggle", m.mode)
	}
}

func TestAttrsRequiresSelection(t *testing.T) {
	m := sized(t, 100, 30)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = updated.(Model)
	if m.showAttrs {
		t.Fatal("attribute table opened without a selection")
	}

	lo := m.layout()
	updated, _ = m.Update(click(lo.mapOriginX+lo.mapW/2, lo.mapOriginY+lo.mapH/2))
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m = updated.(Model)
	if !m.showAttrs {
		t.Fatal("attribute table did not open after selecting")
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestArrowKeysPanOnlyWithoutSidebar(t *testing.T) {
	m := sized(t, 100, 30)

	updated, _ := m.Update(key("down"))
	m = updated.(Model)
	if m.vp.OffsetY != 1 {
		t.Fatalf("offsetY = %d after pan, want 1", m.vp.OffsetY)
	}

	// With the browser open, arrows scroll the list, not the map.
	updated, _ = m.Update(key("tab"))
	m = updated.(Model)
	if !m.showSidebar {
		t.Fatal("sidebar did not open")
	}
	before := m.l.Index()
	updated, _ = m.Update(key("down"))
	m = updated.(Model)
	if m.vp.OffsetY != 1 {
		t.Fatalf("offsetY = %d, map panned while sidebar open", m.vp.OffsetY)
	}
	if m.l.Index() != before+1 {
		t.Fatalf("list index = %d, want %d", m.l.Index(), before+1)
	}
}

func TestMapKeysNotForwardedToList(t *testing.T) {
	m := sized(t, 100, 30)
	updated, _ := m.Update(key("tab"))
	m = updated.(Model)
	before := m.l.Index()

	// Zoom while the sidebar is open: the list cursor must not move.
	updated, _ = m.Update(key("+"))
	m = updated.(Model)
	if m.l.Index() != before {
		t.Fatalf("list index moved to %d on a map key", m.l.Index())
	}
	if m.vp.Zoom <= 1.0 {
		t.Fatalf("zoom = %v, map key not applied", m.vp.Zoom)
	}
}

func TestRefreshPreservesSelection(t *testing.T) {
	m := sized(t, 100, 30)
	lo := m.layout()
	updated, _ := m.Update(click(lo.mapOriginX+lo.mapW/2, lo.mapOriginY+lo.mapH/2))
	m = updated.(Model)
	id := m.syncer.Selected()

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = updated.(Model)
	if m.syncer.Selected() != id {
		t.Fatal("refresh with identical data changed the selection")
	}
	if !m.basemap.Flags(id).Selected {
		t.Fatal("selection flag lost on refresh")
	}
}
