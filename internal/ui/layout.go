package ui

type LayoutMode int

const (
	LayoutWide LayoutMode = iota
	LayoutCompact
	LayoutTooSmall
)

// footerRows is the space kept under the board for the help line.
const footerRows = 1

func DetermineLayoutMode(cols, rows int) LayoutMode {
	if cols < 48 || rows < 16 {
		return LayoutTooSmall
	}
	if cols >= 120 && rows >= 30 {
		return LayoutWide
	}
	return LayoutCompact
}
