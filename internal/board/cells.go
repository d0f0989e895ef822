package board

import (
	"fmt"

	"jeopardy/internal/quiz"
)

// Cell is a position in the flattened click-target order: column by column,
// each column led by its non-clickable header slot.
type Cell int

const (
	slotsPerColumn = quiz.NumClues + 1
	NumCells       = quiz.NumCategories * slotsPerColumn
)

// PreconditionViolation is the panic value for internal contract breaches.
type PreconditionViolation string

func (p PreconditionViolation) Error() string { return "board: precondition violated: " + string(p) }

func violate(format string, args ...any) {
	panic(PreconditionViolation(fmt.Sprintf(format, args...)))
}

func (n Cell) valid() bool { return n >= 0 && n < NumCells }

// Clickable reports whether n addresses a clue rather than a header slot.
func Clickable(n Cell) bool {
	return n.valid() && n%slotsPerColumn != 0
}

func ClueCoords(n Cell) (category, row int) {
	if !Clickable(n) {
		violate("clue coordinates requested for cell %d", n)
	}
	return int(n / slotsPerColumn), int(n%slotsPerColumn) - 1
}

func CellAt(category, row int) Cell {
	if category < 0 || category >= quiz.NumCategories || row < 0 || row >= quiz.NumClues {
		violate("cell requested for category %d row %d", category, row)
	}
	return Cell(category*slotsPerColumn + row + 1)
}

// LabelIndexOf converts a click index into the position of its label in the
// on-screen label sequence, which runs row by row from the $1000 row up to the
// header row. It is a bijection on [0,36) but not its own inverse.
func LabelIndexOf(n Cell) (int, bool) {
	if !n.valid() {
		return 0, false
	}
	return slotsPerColumn*(quiz.NumClues-int(n%slotsPerColumn)) + int(n/slotsPerColumn), true
}
