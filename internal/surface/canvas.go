// Package surface implements the two render surfaces of the map: the
// basemap (tract choropleth, owns polygon geometry and feature state) and
// the overlay (markers and transit stops, owns the input stream). Both draw
// into one shared cell canvas and address it through the same viewport, so a
// pointer position means the same thing to either surface.
package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"foodmap/internal/geom"
)

// Cell is one terminal cell of the composited canvas.
type Cell struct {
	R    rune
	FG   string // hex foreground, empty = terminal default
	Bold bool
}

// Canvas is the shared cell grid the surfaces composite into, bottom-up.
type Canvas struct {
	W, H  int
	cells [][]Cell
}

func NewCanvas(w, h int) *Canvas {
	cells := make([][]Cell, h)
	for y := range cells {
		row := make([]Cell, w)
		for x := range row {
			row[x] = Cell{R: ' '}
		}
		cells[y] = row
	}
	return &Canvas{W: w, H: h, cells: cells}
}

func (c *Canvas) Set(x, y int, cell Cell) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return
	}
	c.cells[y][x] = cell
}

func (c *Canvas) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.W || y >= c.H {
		return Cell{R: ' '}
	}
	return c.cells[y][x]
}

// DrawBox splices a bordered text panel into the canvas at cell coordinates,
// clipping at the canvas edge. Content lines are plain text.
func (c *Canvas) DrawBox(x, y, w, h int, lines []string, fg string) {
	if w < 2 || h < 2 {
		return
	}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			var r rune
			switch {
			case dy == 0 && dx == 0:
				r = '╭'
			case dy == 0 && dx == w-1:
				r = '╮'
			case dy == h-1 && dx == 0:
				r = '╰'
			case dy == h-1 && dx == w-1:
				r = '╯'
			case dy == 0 || dy == h-1:
				r = '─'
			case dx == 0 || dx == w-1:
				r = '│'
			default:
				r = ' '
				li := dy - 1
				ci := dx - 2
				if li >= 0 && li < len(lines) && ci >= 0 {
					rs := []rune(lines[li])
					if ci < len(rs) {
						r = rs[ci]
					}
				}
			}
			c.Set(x+dx, y+dy, Cell{R: r, FG: fg})
		}
	}
}

var styleCache = map[string]lipgloss.Style{}

func styleFor(fg string, bold bool) lipgloss.Style {
	key := fg
	if bold {
		key += "+b"
	}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg != "" {
		s = s.Foreground(lipgloss.Color(fg))
	}
	if bold {
		s = s.Bold(true)
	}
	styleCache[key] = s
	return s
}

// Rows renders the canvas into styled terminal lines, one style run per
// stretch of identically-colored cells.
func (c *Canvas) Rows() []string {
	out := make([]string, c.H)
	var sb strings.Builder
	for y := 0; y < c.H; y++ {
		sb.Reset()
		x := 0
		for x < c.W {
			start := c.cells[y][x]
			var run strings.Builder
			for x < c.W {
				cell := c.cells[y][x]
				if cell.FG != start.FG || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.R)
				x++
			}
			chunk := run.String()
			if start.FG == "" && !start.Bold {
				sb.WriteString(chunk)
			} else {
				sb.WriteString(styleFor(start.FG, start.Bold).Render(chunk))
			}
		}
		out[y] = sb.String()
	}
	return out
}

// microLayer is a braille pixel buffer with a foreground color per cell
// (last writer wins), at geom.MicroPerCellX x geom.MicroPerCellY pixels per
// cell.
type microLayer struct {
	w, h int
	mask [][]uint8
	fg   [][]string
}

func newMicroLayer(w, h int) *microLayer {
	mask := make([][]uint8, h)
	fg := make([][]string, h)
	for i := range mask {
		mask[i] = make([]uint8, w)
		fg[i] = make([]string, w)
	}
	return &microLayer{w: w, h: h, mask: mask, fg: fg}
}

// setPixel sets a micro-pixel at micro coords.
func (l *microLayer) setPixel(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/geom.MicroPerCellX, mx%geom.MicroPerCellX
	cy, ry := my/geom.MicroPerCellY, my%geom.MicroPerCellY
	if cy >= l.h || cx >= l.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	l.mask[cy][cx] |= bit
	l.fg[cy][cx] = color
}

// drawLine draws a micro-pixel line using Bresenham. Widths of 2 and above
// thicken the stroke by one neighbor per extra unit.
func (l *microLayer) drawLine(x0, y0, x1, y1 int, color string, width int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		l.setPixel(x0, y0, color)
		if width >= 2 {
			l.setPixel(x0+1, y0, color)
			l.setPixel(x0, y0+1, color)
		}
		if width >= 3 {
			l.setPixel(x0-1, y0, color)
			l.setPixel(x0, y0-1, color)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// compositeInto writes non-empty braille cells over the canvas.
func (l *microLayer) compositeInto(c *Canvas) {
	for y := 0; y < l.h && y < c.H; y++ {
		for x := 0; x < l.w && x < c.W; x++ {
			if l.mask[y][x] == 0 {
				continue
			}
			c.Set(x, y, Cell{R: rune(0x2800 + int(l.mask[y][x])), FG: l.fg[y][x]})
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
