package window

import (
	"testing"

	"jeopardy/internal/board"

	"golang.org/x/image/font/basicfont"
)

func TestWindowHeightKeepsReferenceAspect(t *testing.T) {
	if got := WindowHeight(1800); got != 1000 {
		t.Fatalf("expected 1000, got %d", got)
	}
	if got := WindowHeight(1000); got != 555 {
		t.Fatalf("expected 555, got %d", got)
	}
}

func TestToBoardFlipsYAxis(t *testing.T) {
	p := toBoard(10, 0, 100)
	if p.X != 10.5 || p.Y != 99.5 {
		t.Fatalf("unexpected point %+v", p)
	}
	r := board.Scale(board.Compute().Title, board.Size{Width: 200, Height: 100})
	if !r.Contains(toBoard(5, 5, 100)) {
		t.Fatalf("top-left screen corner should land in the title band")
	}
}

func TestWrapLinesSplitsOnWords(t *testing.T) {
	lines := wrapLines(basicfont.Face7x13, "one two three", 50)
	if len(lines) != 2 || lines[0] != "one two" || lines[1] != "three" {
		t.Fatalf("unexpected lines %q", lines)
	}
	if wrapLines(basicfont.Face7x13, "   ", 50) != nil {
		t.Fatalf("expected no lines for blank text")
	}
}

func TestPresenterBookkeeping(t *testing.T) {
	g := New(Options{Width: 900})
	if vp := g.CurrentViewportSize(); vp.Width != 900 || vp.Height != 500 {
		t.Fatalf("unexpected viewport %+v", vp)
	}
	box := g.CreateOverlayBox(board.PixelRect{Top: 10, Bottom: 0, Left: 0, Right: 10}, board.Blue)
	label := g.CreateLabel("$200", board.PixelRect{Top: 10, Bottom: 0, Left: 0, Right: 10}, board.LabelFontSize, board.Orange, board.None)
	g.Hide(label)
	if g.elements[label].visible {
		t.Fatalf("expected hidden label")
	}
	g.Show(label)
	g.Destroy(box)
	if len(g.order) != 1 || g.order[0] != label {
		t.Fatalf("unexpected order %v", g.order)
	}
}
