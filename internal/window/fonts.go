package window

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type fontKey struct {
	size int
	bold bool
}

// fontBank caches faces per rounded point size.
type fontBank struct {
	regular *opentype.Font
	bold    *opentype.Font
	cache   map[fontKey]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[fontKey]font.Face{}}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	bank.bold = bol
	return bank
}

func (b *fontBank) face(size float64, bold bool) font.Face {
	key := fontKey{size: max(6, int(math.Round(size))), bold: bold}
	if f, ok := b.cache[key]; ok {
		return f
	}
	src := b.regular
	if bold {
		src = b.bold
	}
	if src == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(src, &opentype.FaceOptions{Size: float64(key.size), DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[key] = f
	return f
}

// wrapLines breaks text on spaces so that each line fits maxWidth pixels
// where possible. A single word wider than maxWidth gets its own line.
func wrapLines(face font.Face, text string, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
