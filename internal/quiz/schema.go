package quiz

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	NumCategories = 6
	NumClues      = 5

	DefaultTitle = "Quiz!"
)

// Quiz is the immutable board content: categories left to right, each with
// its clues ordered by ascending value.
type Quiz struct {
	XMLName    xml.Name   `yaml:"-" json:"-" xml:"quiz"`
	Name       string     `yaml:"name" json:"name,omitempty" xml:"name,attr,omitempty"`
	Categories []Category `yaml:"categories" json:"categories" xml:"category"`
}

type Category struct {
	Name  string `yaml:"name" json:"name" xml:"name,attr"`
	Clues []Clue `yaml:"clues" json:"clues" xml:"clue"`
}

type Clue struct {
	Text string `yaml:"text" json:"text" xml:",chardata"`
}

// Value is the dollar amount of a clue row; row 0 is the cheapest.
func Value(row int) int {
	return 200 * (row + 1)
}

func (q *Quiz) Title() string {
	if name := strings.TrimSpace(q.Name); name != "" {
		return name
	}
	return DefaultTitle
}

// Clue returns the text behind a flattened click index. Index 0 of every run
// of six is the category header slot and has no clue; asking for it, or for
// anything outside the board, is a caller bug.
func (q *Quiz) Clue(cell int) string {
	if cell < 0 || cell >= NumCategories*(NumClues+1) || cell%(NumClues+1) == 0 {
		panic(fmt.Sprintf("quiz: clue requested for non-clue cell %d", cell))
	}
	category := cell / (NumClues + 1)
	row := cell%(NumClues+1) - 1
	return q.Categories[category].Clues[row].Text
}

// Validate checks the fixed 6x5 shape and that every name and clue is present.
func (q *Quiz) Validate() error {
	if len(q.Categories) != NumCategories {
		return &LoadError{Reason: fmt.Sprintf("expected %d categories, got %d", NumCategories, len(q.Categories))}
	}
	for i, c := range q.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return &LoadError{Reason: fmt.Sprintf("categories[%d].name is required", i)}
		}
		if len(c.Clues) != NumClues {
			return &LoadError{Reason: fmt.Sprintf("category %q: expected %d clues, got %d", c.Name, NumClues, len(c.Clues))}
		}
		for j, clue := range c.Clues {
			if strings.TrimSpace(clue.Text) == "" {
				return &LoadError{Reason: fmt.Sprintf("category %q: clue %d ($%d) has no text", c.Name, j, Value(j))}
			}
		}
	}
	return nil
}

// LoadError reports a quiz definition that cannot be used to build a board.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("load quiz")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }
