package quiz

import "testing"

func fullQuiz() *Quiz {
	q := &Quiz{Name: "Test"}
	for i := 0; i < NumCategories; i++ {
		c := Category{Name: string(rune('A' + i))}
		for j := 0; j < NumClues; j++ {
			c.Clues = append(c.Clues, Clue{Text: c.Name + string(rune('0'+j))})
		}
		q.Categories = append(q.Categories, c)
	}
	return q
}

func TestClueUsesFlattenedIndex(t *testing.T) {
	q := fullQuiz()
	if got := q.Clue(1); got != "A0" {
		t.Fatalf("cell 1: got %q", got)
	}
	if got := q.Clue(16); got != "C3" {
		t.Fatalf("cell 16: got %q", got)
	}
	if got := q.Clue(35); got != "F4" {
		t.Fatalf("cell 35: got %q", got)
	}
}

func TestCluePanicsOnHeaderSlot(t *testing.T) {
	q := fullQuiz()
	for _, cell := range []int{0, 12, -1, 36} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for cell %d", cell)
				}
			}()
			_ = q.Clue(cell)
		}()
	}
}

func TestValidateRequiresCategoryName(t *testing.T) {
	q := fullQuiz()
	q.Categories[3].Name = " "
	if err := q.Validate(); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValue(t *testing.T) {
	want := []int{200, 400, 600, 800, 1000}
	for row, v := range want {
		if got := Value(row); got != v {
			t.Fatalf("row %d: got %d want %d", row, got, v)
		}
	}
}
