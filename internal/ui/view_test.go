package ui

import (
	"fmt"
	"strings"
	"testing"

	"jeopardy/internal/board"
	"jeopardy/internal/quiz"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

func testQuiz() *quiz.Quiz {
	q := &quiz.Quiz{Name: "Test"}
	for i := 0; i < quiz.NumCategories; i++ {
		c := quiz.Category{Name: fmt.Sprintf("Cat %c", 'A'+i)}
		for j := 0; j < quiz.NumClues; j++ {
			c.Clues = append(c.Clues, quiz.Clue{Text: fmt.Sprintf("%c for %d", 'A'+i, quiz.Value(j))})
		}
		q.Categories = append(q.Categories, c)
	}
	return q
}

func newTestRoot(t *testing.T) (*Root, *board.Machine) {
	t.Helper()
	v := New(Options{Title: "Test"})
	m := board.NewMachine(testQuiz(), board.Compute(), v, board.Options{Palette: v.Palette()})
	v.SetBoard(m)
	_, _ = v.Update(tea.WindowSizeMsg{Width: 120, Height: 31})
	return v, m
}

// clickCell clicks the terminal cell under the centre of a clue rect.
func clickCell(v *Root, category, row int) {
	px := board.Scale(board.Compute().Clues[category][row], v.CurrentViewportSize())
	x := int((px.Left + px.Right) / 2)
	y := v.boardRows() - int((px.Top+px.Bottom)/2) - 1
	_, _ = v.Update(tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft})
}

func plain(v *Root) string {
	return ansi.Strip(v.renderBoard())
}

func TestWindowSizeSetsUpBoardOnce(t *testing.T) {
	v, _ := newTestRoot(t)
	created := len(v.order)
	if created != 30+1+6+30 {
		t.Fatalf("expected regions and labels to be created, got %d elements", created)
	}
	_, _ = v.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	if len(v.order) != created {
		t.Fatalf("resize must not create a second board")
	}
	out := plain(v)
	for _, want := range []string{"Test", "Cat A", "Cat F", "$200", "$1000"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q on the board", want)
		}
	}
}

func TestClickRevealsAndSecondClickCloses(t *testing.T) {
	v, m := newTestRoot(t)

	clickCell(v, 2, 3)
	if want := (board.State{Showing: true, Cell: board.CellAt(2, 3)}); m.State() != want {
		t.Fatalf("unexpected state %v", m.State())
	}
	out := plain(v)
	if !strings.Contains(out, "C for 800") {
		t.Fatalf("expected clue text on screen:\n%s", out)
	}
	if strings.Contains(out, "$800") {
		t.Fatalf("expected value labels dimmed while clue is open")
	}
	if !strings.Contains(out, "Cat C") {
		t.Fatalf("expected category headers to stay visible")
	}

	_, _ = v.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if m.State().Showing {
		t.Fatalf("expected second click to close the clue")
	}
	out = plain(v)
	if strings.Contains(out, "C for 800") {
		t.Fatalf("expected overlay removed")
	}
	if strings.Count(out, "$800") != 6 {
		t.Fatalf("expected all six $800 labels back, got %d", strings.Count(out, "$800"))
	}
	if m.Remaining() != 29 {
		t.Fatalf("expected one retired cell, got %d remaining", m.Remaining())
	}
}

func TestRightClickIsIgnored(t *testing.T) {
	v, m := newTestRoot(t)
	px := board.Scale(board.Compute().Clues[0][0], v.CurrentViewportSize())
	_, _ = v.Update(tea.MouseClickMsg{X: int(px.Left) + 2, Y: v.boardRows() - int(px.Top) + 1, Button: tea.MouseRight})
	if m.State().Showing {
		t.Fatalf("right click must not open a clue")
	}
}

func TestSpaceClosesOpenClue(t *testing.T) {
	v, m := newTestRoot(t)
	clickCell(v, 5, 0)
	if !m.State().Showing {
		t.Fatalf("expected clue to open")
	}
	_, _ = v.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	if m.State().Showing {
		t.Fatalf("expected space to close the clue")
	}
}

func TestTooSmallDefersSetup(t *testing.T) {
	v := New(Options{})
	m := board.NewMachine(testQuiz(), board.Compute(), v, board.Options{})
	v.SetBoard(m)
	_, _ = v.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	if len(v.order) != 0 {
		t.Fatalf("expected no elements before the terminal is large enough")
	}
	_, _ = v.Update(tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft})
	_, _ = v.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(v.order) == 0 {
		t.Fatalf("expected setup once the terminal is large enough")
	}
}

func TestDestroyRemovesElement(t *testing.T) {
	v := New(Options{})
	h := v.CreateOverlayBox(board.PixelRect{Top: 2, Bottom: 0, Left: 0, Right: 2}, board.Blue)
	v.Destroy(h)
	if len(v.order) != 0 || len(v.elements) != 0 {
		t.Fatalf("expected element removed")
	}
	v.Hide(h)
}

func TestFooterBarTracksOpenedClues(t *testing.T) {
	v, _ := newTestRoot(t)
	if got := v.playedPercent(); got != 0 {
		t.Fatalf("expected empty bar before any clue, got %v", got)
	}
	if footer := ansi.Strip(v.renderFooter()); !strings.Contains(footer, "0%") || !strings.Contains(footer, "30 clues left") {
		t.Fatalf("unexpected footer %q", footer)
	}

	clickCell(v, 0, 0)
	_, _ = v.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	clickCell(v, 1, 0)
	_, _ = v.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	clickCell(v, 2, 0)
	_, _ = v.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})

	if got := v.playedPercent(); got != 0.1 {
		t.Fatalf("expected 3 of 30 opened, got %v", got)
	}
	footer := ansi.Strip(v.renderFooter())
	if !strings.Contains(footer, "10%") || !strings.Contains(footer, "27 clues left") {
		t.Fatalf("unexpected footer %q", footer)
	}
	if ansi.StringWidth(footer) > 120 {
		t.Fatalf("footer wider than the terminal: %d", ansi.StringWidth(footer))
	}
}
