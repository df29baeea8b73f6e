package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"foodmap/internal/config"
	"foodmap/internal/data"
	"foodmap/internal/geom"
	"foodmap/internal/interact"
	"foodmap/internal/surface"
	"foodmap/internal/tract"
)

type Model struct {
	width  int
	height int

	cfg config.Config
	src data.Source

	// Surfaces are built on the first non-zero window size.
	guard   surface.Guard
	idx     *tract.Index
	vp      *geom.Viewport
	basemap *surface.Basemap
	overlay *surface.Overlay
	syncer  *interact.Synchronizer
	tips    *interact.Tooltip
	router  *interact.Router

	entities  []tract.PointEntity
	stops     []tract.TransitStop
	synthetic bool

	mode string

	showSidebar bool
	helpVisible bool
	showAttrs   bool

	status string

	// Resource browser
	l     list.Model
	items []list.Item

	// Selected tract attributes table
	tbl          table.Model
	selected     tract.Attributes
	hasSelection bool

	// hover state
	hovering    bool
	hoverHasGeo bool
	hoverLon    float64
	hoverLat    float64

	// last rendered map size
	mapW int
	mapH int
}

func New(cfg config.Config) Model {
	m := Model{
		cfg:         cfg,
		mode:        cfg.Mode,
		showSidebar: false,
		helpVisible: true,
		status:      "foodmap ready",
	}
	m.src = data.Source{
		TractsPath:    cfg.Tracts,
		ResourcesPath: cfg.Resources,
		StopsPath:     cfg.Stops,
		Reference:     cfg.ReferencePoint(),
	}
	m.idx = tract.NewIndex()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Resources"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// attributes table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(16)
	m.loadData()
	return m
}

func (m Model) Init() tea.Cmd { return nil }
