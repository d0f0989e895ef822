package board

import "jeopardy/internal/quiz"

// Layout fractions measured from the top of the viewport.
const (
	titleBand    = 0.15
	categoryBand = 0.30
)

// Rect is a normalized region. Y grows upwards, so Top > Bottom.
type Rect struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// PixelRect is a Rect scaled to the viewport, same orientation.
type PixelRect Rect

type Size struct {
	Width  float64
	Height float64
}

type Point struct {
	X float64
	Y float64
}

func (r PixelRect) Width() float64  { return r.Right - r.Left }
func (r PixelRect) Height() float64 { return r.Top - r.Bottom }

// Contains is half-open so adjacent cells never both claim a point.
func (r PixelRect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Bottom && p.Y < r.Top
}

// Inset shrinks the rect by m on every side.
func (r PixelRect) Inset(m float64) PixelRect {
	return PixelRect{Top: r.Top - m, Bottom: r.Bottom + m, Left: r.Left + m, Right: r.Right - m}
}

type Geometry struct {
	Title      Rect
	Categories [quiz.NumCategories]Rect
	Clues      [quiz.NumCategories][quiz.NumClues]Rect
	// ClueBox is the centred alternative placement for a revealed clue.
	ClueBox Rect
}

func Compute() Geometry {
	grid := ComputeFor(quiz.NumCategories, quiz.NumClues)
	g := Geometry{
		Title:   grid.Title,
		ClueBox: Rect{Top: 1.0 - 0.4, Bottom: 1.0 - 0.8, Left: 0.2, Right: 0.8},
	}
	for i := range g.Categories {
		g.Categories[i] = grid.Categories[i]
		copy(g.Clues[i][:], grid.Clues[i])
	}
	return g
}

// GridGeometry is the layout of a board of any shape: Categories[i] is the
// header of column i and Clues[i][j] the j-th clue row under it.
type GridGeometry struct {
	Title      Rect
	Categories []Rect
	Clues      [][]Rect
}

// ComputeFor lays out the same bands for an arbitrary board shape.
func ComputeFor(ncategories, nclues int) GridGeometry {
	g := GridGeometry{
		Title:      columnRect(0, 1, 1.0, 1.0-titleBand),
		Categories: make([]Rect, ncategories),
		Clues:      make([][]Rect, ncategories),
	}
	for i := 0; i < ncategories; i++ {
		g.Categories[i] = columnRect(i, ncategories, 1.0-titleBand, 1.0-categoryBand)
		g.Clues[i] = make([]Rect, nclues)
		for j := 0; j < nclues; j++ {
			g.Clues[i][j] = clueRect(i, j, ncategories, nclues)
		}
	}
	return g
}

func columnRect(i, n int, top, bottom float64) Rect {
	return Rect{
		Top:    top,
		Bottom: bottom,
		Left:   float64(i) / float64(n),
		Right:  float64(i+1) / float64(n),
	}
}

func clueRect(i, j, ncategories, nclues int) Rect {
	rows := 1.0 - categoryBand
	return columnRect(i, ncategories,
		rows-rows*float64(j)/float64(nclues),
		rows-rows*float64(j+1)/float64(nclues),
	)
}

// Scale maps a normalized rect onto a viewport.
func Scale(r Rect, vp Size) PixelRect {
	return PixelRect{
		Top:    r.Top * vp.Height,
		Bottom: r.Bottom * vp.Height,
		Left:   r.Left * vp.Width,
		Right:  r.Right * vp.Width,
	}
}

type PixelGeometry struct {
	Title      PixelRect
	Categories [quiz.NumCategories]PixelRect
	Clues      [quiz.NumCategories][quiz.NumClues]PixelRect
	ClueBox    PixelRect
}

// Scale must be called again whenever the viewport may have changed.
func (g Geometry) Scale(vp Size) PixelGeometry {
	p := PixelGeometry{
		Title:   Scale(g.Title, vp),
		ClueBox: Scale(g.ClueBox, vp),
	}
	for i := range g.Categories {
		p.Categories[i] = Scale(g.Categories[i], vp)
		for j := range g.Clues[i] {
			p.Clues[i][j] = Scale(g.Clues[i][j], vp)
		}
	}
	return p
}
