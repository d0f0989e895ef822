package quiz

import (
	"strings"
	"testing"
)

func TestMarkdownListsEveryCategoryAndValue(t *testing.T) {
	q := &Quiz{}
	for i := 0; i < NumCategories; i++ {
		c := Category{Name: string(rune('A' + i))}
		for j := 0; j < NumClues; j++ {
			c.Clues = append(c.Clues, Clue{Text: "x"})
		}
		q.Categories = append(q.Categories, c)
	}
	q.Categories[2].Clues[3].Text = "a | b\nc"

	md := Markdown(q)
	if !strings.HasPrefix(md, "# Quiz!\n") {
		t.Fatalf("expected fallback title heading, got %q", md[:20])
	}
	if got := strings.Count(md, "\n## "); got != NumCategories {
		t.Fatalf("expected %d category headings, got %d", NumCategories, got)
	}
	if got := strings.Count(md, "| $1000 |"); got != NumCategories {
		t.Fatalf("expected one $1000 row per category, got %d", got)
	}
	if !strings.Contains(md, `| $800 | a \| b c |`) {
		t.Fatalf("expected escaped single-line cell:\n%s", md)
	}
}
