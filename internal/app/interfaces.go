package app

import "jeopardy/internal/board"

// Frontend is a board.Presenter that also owns the input loop.
type Frontend interface {
	board.Presenter
	Run() error
	Stop()
}
