// Package window is the desktop frontend: an ebiten game that implements
// board.Presenter in window pixels.
package window

import (
	"image/color"
	"math"
	"sync/atomic"

	"jeopardy/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ReferenceWidth is the window width the font sizes were chosen for.
const ReferenceWidth = 1800

// Board is the part of the state machine the frame loop drives.
type Board interface {
	Setup()
	Tick() board.Transition
}

type Options struct {
	Title string
	Width int
}

type element struct {
	label   bool
	text    string
	rect    board.PixelRect
	size    float64
	fg      color.Color
	bg      color.Color
	visible bool
}

// Game implements ebiten.Game. The window is not resizable; the viewport is
// still read from Layout on every press.
type Game struct {
	title  string
	width  int
	height int

	board Board
	ready bool
	quit  atomic.Bool
	fonts fontBank

	next     board.Handle
	elements map[board.Handle]*element
	order    []board.Handle
}

// WindowHeight keeps the reference 1.8 aspect ratio.
func WindowHeight(width int) int {
	return int(math.Floor(float64(width) / 1.8))
}

func New(opts Options) *Game {
	if opts.Width <= 0 {
		opts.Width = ReferenceWidth
	}
	return &Game{
		title:    opts.Title,
		width:    opts.Width,
		height:   WindowHeight(opts.Width),
		fonts:    newFontBank(),
		elements: map[board.Handle]*element{},
	}
}

func (g *Game) SetBoard(b Board) {
	g.board = b
}

func (g *Game) Run() error {
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(g)
}

// Stop ends the game loop on the next frame.
func (g *Game) Stop() {
	g.quit.Store(true)
}

func (g *Game) Update() error {
	if g.quit.Load() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.board == nil {
		return nil
	}
	if !g.ready {
		g.board.Setup()
		g.ready = true
	}
	g.board.Tick()
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	for _, h := range g.order {
		e := g.elements[h]
		if !e.visible {
			continue
		}
		x, y, w, hgt := g.screenRect(e.rect)
		if !e.label {
			vector.DrawFilledRect(screen, x, y, w, hgt, e.bg, false)
			continue
		}
		if opaque(e.bg) {
			vector.DrawFilledRect(screen, x, y, w, hgt, e.bg, false)
		}
		g.drawText(screen, e, x, y, w, hgt)
	}
}

func (g *Game) drawText(screen *ebiten.Image, e *element, x, y, w, h float32) {
	scaled := e.size * float64(g.width) / ReferenceWidth
	face := g.fonts.face(scaled, e.size >= board.TitleFontSize)
	lines := wrapLines(face, e.text, int(w))
	m := face.Metrics()
	lineH := m.Height.Ceil()
	top := int(y) + (int(h)-lineH*len(lines))/2
	for i, line := range lines {
		b := text.BoundString(face, line)
		lx := int(x) + (int(w)-b.Dx())/2
		baseline := top + i*lineH + m.Ascent.Ceil()
		text.Draw(screen, line, face, lx, baseline, e.fg)
	}
}

// screenRect flips a board rect (y up) into ebiten screen space (y down).
func (g *Game) screenRect(r board.PixelRect) (x, y, w, h float32) {
	return float32(r.Left), float32(float64(g.height) - r.Top), float32(r.Width()), float32(r.Height())
}

func opaque(c color.Color) bool {
	if c == nil {
		return false
	}
	_, _, _, a := c.RGBA()
	return a > 0
}

func (g *Game) add(e *element) board.Handle {
	g.next++
	g.elements[g.next] = e
	g.order = append(g.order, g.next)
	return g.next
}

func (g *Game) CreateLabel(s string, r board.PixelRect, fontSize float64, fg, bg color.Color) board.Handle {
	return g.add(&element{label: true, text: s, rect: r, size: fontSize, fg: fg, bg: bg, visible: true})
}

func (g *Game) CreateOverlayBox(r board.PixelRect, c color.Color) board.Handle {
	return g.add(&element{rect: r, bg: c, visible: true})
}

func (g *Game) Hide(h board.Handle) {
	if e, ok := g.elements[h]; ok {
		e.visible = false
	}
}

func (g *Game) Show(h board.Handle) {
	if e, ok := g.elements[h]; ok {
		e.visible = true
	}
}

func (g *Game) Destroy(h board.Handle) {
	if _, ok := g.elements[h]; !ok {
		return
	}
	delete(g.elements, h)
	for i, id := range g.order {
		if id == h {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

func (g *Game) CurrentViewportSize() board.Size {
	return board.Size{Width: float64(g.width), Height: float64(g.height)}
}

func (g *Game) CurrentPointerPosition() (board.Point, bool) {
	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return board.Point{}, false
	}
	return toBoard(x, y, g.height), true
}

func (g *Game) PointerJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func toBoard(x, y, height int) board.Point {
	return board.Point{X: float64(x) + 0.5, Y: float64(height-y) - 0.5}
}

var _ ebiten.Game = (*Game)(nil)
var _ board.Presenter = (*Game)(nil)
