package ui

import "jeopardy/internal/board"

// Board is the part of the state machine the terminal loop drives.
type Board interface {
	Setup()
	Tick() board.Transition
	State() board.State
	Remaining() int
}

type Options struct {
	Title        string
	Debug        bool
	StyleVariant string
	// Board is usually attached later with SetBoard, since the machine
	// needs the Root as its Presenter.
	Board Board
}
