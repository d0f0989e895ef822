package ui

import (
	"image/color"
	"math"
	"strings"

	"jeopardy/internal/board"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

type elementKind int

const (
	kindBox elementKind = iota
	kindLabel
)

type element struct {
	kind    elementKind
	text    string
	rect    board.PixelRect
	bold    bool
	fg      color.Color
	bg      color.Color
	visible bool
}

type cellStyle struct {
	fg   color.Color
	bg   color.Color
	bold bool
}

type canvas struct {
	cols, rows int
	runes      [][]rune
	styles     [][]cellStyle
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, runes: make([][]rune, rows), styles: make([][]cellStyle, rows)}
	for y := 0; y < rows; y++ {
		c.runes[y] = []rune(strings.Repeat(" ", cols))
		c.styles[y] = make([]cellStyle, cols)
	}
	return c
}

func opaque(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}

// span converts a board rect (y up) into the half-open screen cell range it covers.
func span(r board.PixelRect, cols, rows int) (x0, y0, x1, y1 int) {
	h := float64(rows)
	x0 = clamp(int(math.Round(r.Left)), 0, cols)
	x1 = clamp(int(math.Round(r.Right)), 0, cols)
	y0 = clamp(int(math.Round(h-r.Top)), 0, rows)
	y1 = clamp(int(math.Round(h-r.Bottom)), 0, rows)
	return x0, y0, x1, y1
}

func (c *canvas) fill(x0, y0, x1, y1 int, bg color.Color) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.runes[y][x] = ' '
			c.styles[y][x] = cellStyle{bg: bg}
		}
	}
}

func (c *canvas) draw(e *element) {
	x0, y0, x1, y1 := span(e.rect, c.cols, c.rows)
	if x1 <= x0 || y1 <= y0 {
		return
	}
	if e.kind == kindBox {
		c.fill(x0, y0, x1, y1, e.bg)
		return
	}
	if opaque(e.bg) {
		c.fill(x0, y0, x1, y1, e.bg)
	}
	width, height := x1-x0, y1-y0
	lines := strings.Split(ansi.Wrap(e.text, width, ""), "\n")
	if len(lines) > height {
		lines = lines[:height]
		lines[height-1] = ansi.Truncate(lines[height-1]+"…", width, "…")
	}
	top := y0 + (height-len(lines))/2
	for i, line := range lines {
		line = strings.TrimSpace(line)
		left := x0 + (width-ansi.StringWidth(line))/2
		x := max(left, x0)
		for _, ch := range line {
			if x >= x1 {
				break
			}
			c.runes[top+i][x] = ch
			st := c.styles[top+i][x]
			st.fg = e.fg
			st.bold = e.bold
			c.styles[top+i][x] = st
			x++
		}
	}
}

// String renders runs of equally styled cells with lipgloss.
func (c *canvas) String() string {
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.styles[y][x] == c.styles[y][start] {
				continue
			}
			b.WriteString(renderRun(string(c.runes[y][start:x]), c.styles[y][start]))
			start = x
		}
	}
	return b.String()
}

func renderRun(s string, st cellStyle) string {
	if st == (cellStyle{}) {
		return s
	}
	style := lipgloss.NewStyle()
	if opaque(st.fg) {
		style = style.Foreground(st.fg)
	}
	if opaque(st.bg) {
		style = style.Background(st.bg)
	}
	if st.bold {
		style = style.Bold(true)
	}
	return style.Render(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func trimForWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(strings.ReplaceAll(ansi.Strip(s), "\n", " "))
	if len(r) <= width {
		return string(r)
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
