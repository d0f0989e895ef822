package board

import "image/color"

// Handle identifies an element created by a Presenter. Zero is never issued.
type Handle uint64

// Presenter is the rendering and input surface the board drives. All
// coordinates are board pixels: origin at the bottom-left corner, y up.
// New elements are visible until hidden or destroyed.
type Presenter interface {
	CreateLabel(text string, r PixelRect, fontSize float64, fg, bg color.Color) Handle
	CreateOverlayBox(r PixelRect, c color.Color) Handle
	Hide(h Handle)
	Show(h Handle)
	Destroy(h Handle)
	CurrentViewportSize() Size
	CurrentPointerPosition() (Point, bool)
	// PointerJustPressed is edge-triggered: true once per discrete press.
	PointerJustPressed() bool
}

const (
	TitleFontSize = 100
	LabelFontSize = 50
)

type Palette struct {
	TitleFG    color.Color
	TitleBG    color.Color
	CategoryFG color.Color
	CategoryBG color.Color
	ValueFG    color.Color
	ValueBG    color.Color
	Region     color.Color
	ClueBox    color.Color
	ClueFG     color.Color
	ClueBG     color.Color
}

var (
	Yellow       = color.RGBA{R: 0xff, G: 0xff, A: 0xff}
	White        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	Blue         = color.RGBA{B: 0xff, A: 0xff}
	Orange       = color.RGBA{R: 0xff, G: 0xa5, A: 0xff}
	MidnightBlue = color.RGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xff}
	None         = color.RGBA{}
)

func DefaultPalette() Palette {
	return Palette{
		TitleFG:    Yellow,
		TitleBG:    None,
		CategoryFG: White,
		CategoryBG: Blue,
		ValueFG:    Orange,
		ValueBG:    None,
		Region:     Blue,
		ClueBox:    MidnightBlue,
		ClueFG:     White,
		ClueBG:     Blue,
	}
}
