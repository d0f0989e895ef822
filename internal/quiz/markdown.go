package quiz

import (
	"fmt"
	"strings"
)

// Markdown renders the whole board, answers included, one section per
// category. Used by the show command.
func Markdown(q *Quiz) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", q.Title())
	for _, c := range q.Categories {
		fmt.Fprintf(&b, "\n## %s\n\n", c.Name)
		b.WriteString("| Value | Clue |\n|---:|---|\n")
		for row, clue := range c.Clues {
			fmt.Fprintf(&b, "| $%d | %s |\n", Value(row), escapeCell(clue.Text))
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
