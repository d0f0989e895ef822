package board

import "testing"

func TestClueCoordsForClickableCells(t *testing.T) {
	g := Compute()
	for n := Cell(0); n < NumCells; n++ {
		if n%6 == 0 {
			if Clickable(n) {
				t.Fatalf("header slot %d reported clickable", n)
			}
			continue
		}
		c, r := ClueCoords(n)
		if c != int(n)/6 || r != int(n)%6-1 {
			t.Fatalf("cell %d: got (%d,%d)", n, c, r)
		}
		if c >= len(g.Clues) || r >= len(g.Clues[c]) {
			t.Fatalf("cell %d maps outside the grid: (%d,%d)", n, c, r)
		}
		if back := CellAt(c, r); back != n {
			t.Fatalf("CellAt(%d,%d) = %d, want %d", c, r, back, n)
		}
	}
}

func TestClueCoordsPanicsOnHeader(t *testing.T) {
	defer func() {
		rec := recover()
		if _, ok := rec.(PreconditionViolation); !ok {
			t.Fatalf("expected PreconditionViolation, got %v", rec)
		}
	}()
	ClueCoords(12)
}

func TestLabelIndexOfGoldenValues(t *testing.T) {
	golden := map[Cell]int{0: 30, 1: 24, 6: 31, 35: 5, 16: 8}
	for n, want := range golden {
		got, ok := LabelIndexOf(n)
		if !ok || got != want {
			t.Fatalf("LabelIndexOf(%d) = %d,%v want %d", n, got, ok, want)
		}
	}
}

func TestLabelIndexOfIsBijection(t *testing.T) {
	seen := map[int]Cell{}
	for n := Cell(0); n < NumCells; n++ {
		m, ok := LabelIndexOf(n)
		if !ok {
			t.Fatalf("cell %d has no label index", n)
		}
		if m != 6*(5-int(n)%6)+int(n)/6 {
			t.Fatalf("cell %d: formula mismatch, got %d", n, m)
		}
		if m < 0 || m >= NumCells {
			t.Fatalf("cell %d: label index %d out of range", n, m)
		}
		if prev, dup := seen[m]; dup {
			t.Fatalf("cells %d and %d share label index %d", prev, n, m)
		}
		seen[m] = n
	}
}

func TestLabelIndexOfIsNotInvolution(t *testing.T) {
	once, _ := LabelIndexOf(1)
	twice, _ := LabelIndexOf(Cell(once))
	if twice == 1 {
		t.Fatalf("expected f(f(1)) != 1")
	}
	if twice != 34 {
		t.Fatalf("expected f(24) = 34, got %d", twice)
	}
}

func TestLabelIndexOfOutOfDomain(t *testing.T) {
	for _, n := range []Cell{-1, 36, 100} {
		if _, ok := LabelIndexOf(n); ok {
			t.Fatalf("expected no label index for %d", n)
		}
	}
}
