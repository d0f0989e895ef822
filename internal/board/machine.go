package board

import (
	"fmt"

	"jeopardy/internal/quiz"
)

type OverlayPlacement string

const (
	OverlayOnCell   OverlayPlacement = "cell"
	OverlayCentered OverlayPlacement = "center"
)

// State is Closed when Showing is false; otherwise the clue at Cell is open.
type State struct {
	Showing bool
	Cell    Cell
}

func (s State) String() string {
	if !s.Showing {
		return "closed"
	}
	return fmt.Sprintf("showing(%d)", s.Cell)
}

type Transition int

const (
	NoOp Transition = iota
	Revealed
	Closed
)

// Reveal describes a clue that was just opened.
type Reveal struct {
	Cell     Cell
	Category string
	Row      int
	Value    int
	Text     string
}

// Listener observes transitions. It runs inside the tick that caused them.
type Listener interface {
	ClueRevealed(r Reveal)
	ClueClosed(cell Cell)
}

type Options struct {
	Palette      Palette
	Overlay      OverlayPlacement
	HideAnswered bool
	Listener     Listener
}

type overlay struct {
	box  Handle
	text Handle
}

// Machine owns every board element and the open/closed state. It is not
// safe for concurrent use; frontends drive it from their update loop.
type Machine struct {
	quiz *quiz.Quiz
	geom Geometry
	p    Presenter
	opts Options

	ready   bool
	title   Handle
	labels  [NumCells]Handle
	visible [NumCells]bool
	regions [NumCells]Handle
	active  [NumCells]bool

	state   State
	current *overlay
	hidden  []int
}

func NewMachine(q *quiz.Quiz, g Geometry, p Presenter, opts Options) *Machine {
	if opts.Palette == (Palette{}) {
		opts.Palette = DefaultPalette()
	}
	if opts.Overlay == "" {
		opts.Overlay = OverlayOnCell
	}
	return &Machine{quiz: q, geom: g, p: p, opts: opts}
}

// labelMargin is the gap left around every label box.
func labelMargin(vp Size) float64 {
	return 0.005 * max(vp.Width, vp.Height)
}

// Setup creates the board elements using the viewport size at this moment.
// Labels are not re-laid out if the viewport changes later.
func (m *Machine) Setup() {
	if m.ready {
		violate("setup called twice")
	}
	vp := m.p.CurrentViewportSize()
	px := m.geom.Scale(vp)
	margin := labelMargin(vp)
	pal := m.opts.Palette

	for n := Cell(0); n < NumCells; n++ {
		if !Clickable(n) {
			continue
		}
		c, r := ClueCoords(n)
		m.regions[n] = m.p.CreateOverlayBox(px.Clues[c][r].Inset(margin), pal.Region)
		m.active[n] = true
	}

	m.title = m.p.CreateLabel(m.quiz.Title(), px.Title.Inset(margin), TitleFontSize, pal.TitleFG, pal.TitleBG)
	for c, cat := range m.quiz.Categories {
		header := Cell(c * slotsPerColumn)
		idx, _ := LabelIndexOf(header)
		m.labels[idx] = m.p.CreateLabel(cat.Name, px.Categories[c].Inset(margin), LabelFontSize, pal.CategoryFG, pal.CategoryBG)
		m.visible[idx] = true
		for r := range cat.Clues {
			idx, _ := LabelIndexOf(CellAt(c, r))
			text := fmt.Sprintf("$%d", quiz.Value(r))
			m.labels[idx] = m.p.CreateLabel(text, px.Clues[c][r].Inset(margin), LabelFontSize, pal.ValueFG, pal.ValueBG)
			m.visible[idx] = true
		}
	}
	m.ready = true
}

// Tick consumes at most one press per frame.
func (m *Machine) Tick() Transition {
	if !m.p.PointerJustPressed() {
		return NoOp
	}
	return m.Press()
}

// Press applies one pointer press to the board.
func (m *Machine) Press() Transition {
	if !m.ready {
		violate("press before setup")
	}
	if m.state.Showing {
		m.close()
		return Closed
	}
	pos, ok := m.p.CurrentPointerPosition()
	if !ok {
		violate("press without a pointer position")
	}
	cell, hit := m.hitTest(pos)
	if !hit {
		return NoOp
	}
	m.reveal(cell)
	return Revealed
}

func (m *Machine) hitTest(pos Point) (Cell, bool) {
	px := m.geom.Scale(m.p.CurrentViewportSize())
	for n := Cell(0); n < NumCells; n++ {
		if !m.active[n] {
			continue
		}
		c, r := ClueCoords(n)
		if px.Clues[c][r].Contains(pos) {
			return n, true
		}
	}
	return 0, false
}

func (m *Machine) reveal(cell Cell) {
	m.active[cell] = false
	m.p.Hide(m.regions[cell])

	idx, _ := LabelIndexOf(cell)
	m.hideLabel(idx)

	vp := m.p.CurrentViewportSize()
	px := m.geom.Scale(vp)
	c, r := ClueCoords(cell)
	rect := px.Clues[c][r]
	if m.opts.Overlay == OverlayCentered {
		rect = px.ClueBox
	}
	text := m.quiz.Clue(int(cell))
	pal := m.opts.Palette
	m.current = &overlay{
		box:  m.p.CreateOverlayBox(rect, pal.ClueBox),
		text: m.p.CreateLabel(text, rect.Inset(labelMargin(vp)), LabelFontSize, pal.ClueFG, pal.ClueBG),
	}

	for i := range m.labels {
		if isHeaderLabel(i) {
			continue
		}
		m.hideLabel(i)
	}

	m.state = State{Showing: true, Cell: cell}
	if m.opts.Listener != nil {
		m.opts.Listener.ClueRevealed(Reveal{
			Cell:     cell,
			Category: m.quiz.Categories[c].Name,
			Row:      r,
			Value:    quiz.Value(r),
			Text:     text,
		})
	}
}

func (m *Machine) close() {
	cell := m.state.Cell
	m.p.Destroy(m.current.text)
	m.p.Destroy(m.current.box)
	m.current = nil

	answered, _ := LabelIndexOf(cell)
	for _, idx := range m.hidden {
		if m.opts.HideAnswered && idx == answered {
			continue
		}
		m.p.Show(m.labels[idx])
		m.visible[idx] = true
	}
	m.hidden = m.hidden[:0]

	m.state = State{}
	if m.opts.Listener != nil {
		m.opts.Listener.ClueClosed(cell)
	}
}

func (m *Machine) hideLabel(idx int) {
	if !m.visible[idx] {
		return
	}
	m.p.Hide(m.labels[idx])
	m.visible[idx] = false
	m.hidden = append(m.hidden, idx)
}

// Header labels sit in the last row of the label sequence.
func isHeaderLabel(idx int) bool {
	return idx/slotsPerColumn == quiz.NumClues
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Retired(n Cell) bool {
	return Clickable(n) && m.ready && !m.active[n]
}

// Remaining counts clues that can still be opened.
func (m *Machine) Remaining() int {
	count := 0
	for _, a := range m.active {
		if a {
			count++
		}
	}
	return count
}

// LabelVisible reports whether the label for click index n is currently shown.
func (m *Machine) LabelVisible(n Cell) bool {
	idx, ok := LabelIndexOf(n)
	return ok && m.visible[idx]
}
