package ui

import (
	"image/color"

	"jeopardy/internal/board"

	lipgloss "charm.land/lipgloss/v2"
)

type Theme struct {
	Board    board.Palette
	Footer   lipgloss.Style
	Status   lipgloss.Style
	Warning  lipgloss.Style
	// Progress are the blend stops of the footer's answered bar.
	Progress []color.Color
}

func DefaultTheme() Theme {
	return ThemeForVariant("classic")
}

func ThemeForVariant(variant string) Theme {
	switch variant {
	case "night":
		return nightTheme()
	case "mono":
		return monoTheme()
	default:
		return classicTheme()
	}
}

func classicTheme() Theme {
	ink := lipgloss.Color("#0E1420")
	powder := lipgloss.Color("#EAF2FF")
	amber := lipgloss.Color("#FFC857")

	return Theme{
		Board: board.DefaultPalette(),
		Footer: lipgloss.NewStyle().
			Background(ink).
			Foreground(powder),
		Status: lipgloss.NewStyle().
			Background(ink).
			Foreground(amber).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(amber).
			Bold(true),
		Progress: []color.Color{board.Orange, amber},
	}
}

func nightTheme() Theme {
	gold := lipgloss.Color("#F2D16B")
	navy := lipgloss.Color("#10194A")
	indigo := lipgloss.Color("#1B2A7A")
	deep := lipgloss.Color("#060A1F")
	paper := lipgloss.Color("#F4F6FA")
	sky := lipgloss.Color("#86B6F6")

	return Theme{
		Board: board.Palette{
			TitleFG:    gold,
			TitleBG:    board.None,
			CategoryFG: paper,
			CategoryBG: indigo,
			ValueFG:    gold,
			ValueBG:    board.None,
			Region:     navy,
			ClueBox:    deep,
			ClueFG:     paper,
			ClueBG:     indigo,
		},
		Footer:   lipgloss.NewStyle().Background(deep).Foreground(sky),
		Status:   lipgloss.NewStyle().Background(deep).Foreground(gold).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(gold).Bold(true),
		Progress: []color.Color{sky, gold},
	}
}

func monoTheme() Theme {
	white := lipgloss.Color("#FFFFFF")
	grey := lipgloss.Color("#4A4A4A")
	dark := lipgloss.Color("#1A1A1A")

	return Theme{
		Board: board.Palette{
			TitleFG:    white,
			TitleBG:    board.None,
			CategoryFG: dark,
			CategoryBG: white,
			ValueFG:    white,
			ValueBG:    board.None,
			Region:     grey,
			ClueBox:    dark,
			ClueFG:     white,
			ClueBG:     grey,
		},
		Footer:   lipgloss.NewStyle().Foreground(white),
		Status:   lipgloss.NewStyle().Foreground(white).Bold(true),
		Warning:  lipgloss.NewStyle().Foreground(white).Bold(true),
		Progress: []color.Color{grey, white},
	}
}

func normalizeStyleVariant(v string) string {
	switch v {
	case "classic", "night", "mono":
		return v
	default:
		return "classic"
	}
}
