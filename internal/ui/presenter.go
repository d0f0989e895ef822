package ui

import (
	"image/color"

	"jeopardy/internal/board"
)

func (r *Root) add(e *element) board.Handle {
	r.next++
	r.elements[r.next] = e
	r.order = append(r.order, r.next)
	return r.next
}

func (r *Root) CreateLabel(text string, rect board.PixelRect, fontSize float64, fg, bg color.Color) board.Handle {
	return r.add(&element{
		kind:    kindLabel,
		text:    text,
		rect:    rect,
		bold:    fontSize >= board.TitleFontSize,
		fg:      fg,
		bg:      bg,
		visible: true,
	})
}

func (r *Root) CreateOverlayBox(rect board.PixelRect, c color.Color) board.Handle {
	return r.add(&element{kind: kindBox, rect: rect, bg: c, visible: true})
}

func (r *Root) Hide(h board.Handle) {
	if e, ok := r.elements[h]; ok {
		e.visible = false
	}
}

func (r *Root) Show(h board.Handle) {
	if e, ok := r.elements[h]; ok {
		e.visible = true
	}
}

func (r *Root) Destroy(h board.Handle) {
	if _, ok := r.elements[h]; !ok {
		return
	}
	delete(r.elements, h)
	for i, id := range r.order {
		if id == h {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// CurrentViewportSize is read fresh on every call; the footer row is not
// part of the board.
func (r *Root) CurrentViewportSize() board.Size {
	return board.Size{Width: float64(r.cols), Height: float64(r.boardRows())}
}

func (r *Root) CurrentPointerPosition() (board.Point, bool) {
	return r.pointer, r.hasPointer
}

func (r *Root) PointerJustPressed() bool {
	p := r.pressed
	r.pressed = false
	return p
}
