// Package app wires a quiz, the board state machine, a frontend and the
// session journal into one game session.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"jeopardy/internal/board"
	"jeopardy/internal/quiz"
	"jeopardy/internal/state"
	"jeopardy/internal/telemetry"
	"jeopardy/internal/ui"
	"jeopardy/internal/window"

	"github.com/google/uuid"
)

type App struct {
	cfg Config

	logger *telemetry.JSONLogger
	store  state.Store

	sessionID string
	quiz      *quiz.Quiz
	machine   *board.Machine
	frontend  Frontend
	journal   *journal
	now       func() time.Time
}

// New loads and validates the quiz before anything else is built, so a bad
// definition never opens a window or takes over the terminal.
func New(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	q, err := quiz.Load(cfg.QuizPath)
	if err != nil {
		return nil, err
	}

	logger, err := telemetry.NewJSONLogger(cfg.LogPath)
	if err != nil {
		return nil, err
	}
	logger.SetDebug(cfg.Debug)

	var store state.Store
	if cfg.Journal {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		s, err := OpenJournal(context.Background(), cfg)
		if err != nil {
			_ = logger.Close()
			return nil, err
		}
		store = s
	}

	a := &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		sessionID: uuid.NewString(),
		quiz:      q,
		now:       time.Now,
	}
	logger.Bind("session", a.sessionID)
	a.journal = newJournal(store, logger, a.sessionID)
	a.buildFrontend()
	return a, nil
}

// OpenJournal opens the session history database under cfg.DataDir.
func OpenJournal(ctx context.Context, cfg Config) (*state.SQLiteStore, error) {
	store, err := state.NewSQLite(cfg.JournalPath())
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

func (a *App) buildFrontend() {
	opts := board.Options{
		Overlay:      board.OverlayPlacement(a.cfg.Board.Overlay),
		HideAnswered: a.cfg.Board.HideAnswered,
		Listener:     a.journal,
	}
	geom := board.Compute()

	switch a.cfg.Frontend {
	case FrontendWindow:
		g := window.New(window.Options{Title: a.quiz.Title(), Width: a.cfg.WindowWidth})
		a.machine = board.NewMachine(a.quiz, geom, g, opts)
		g.SetBoard(a.machine)
		a.frontend = g
	default:
		r := ui.New(ui.Options{Title: a.quiz.Title(), Debug: a.cfg.Debug, StyleVariant: a.cfg.UI.StyleVariant})
		opts.Palette = r.Palette()
		a.machine = board.NewMachine(a.quiz, geom, r, opts)
		r.SetBoard(a.machine)
		a.frontend = r
	}
}

func (a *App) SessionID() string { return a.sessionID }

func (a *App) Machine() *board.Machine { return a.machine }

// Run blocks until the frontend exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.journal.ctx = context.WithoutCancel(ctx)
	start := a.now()
	if a.store != nil {
		if err := a.store.StartSession(ctx, state.Session{
			ID:        a.sessionID,
			QuizTitle: a.quiz.Title(),
			QuizPath:  a.cfg.QuizPath,
			Frontend:  a.cfg.Frontend,
			StartTS:   start,
		}); err != nil {
			return err
		}
	}
	a.logger.Info(telemetry.EventAppStart, map[string]any{
		"quiz":     a.quiz.Title(),
		"frontend": a.cfg.Frontend,
		"overlay":  a.cfg.Board.Overlay,
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			a.frontend.Stop()
		case <-done:
		}
	}()

	runErr := a.frontend.Run()

	if a.store != nil {
		if err := a.store.EndSession(context.WithoutCancel(ctx), a.sessionID, a.now()); err != nil {
			a.logger.Error(telemetry.EventJournalFail, map[string]any{"op": "end_session", "error": err.Error()})
		}
	}
	a.logger.Info(telemetry.EventAppStop, map[string]any{
		"reveals":   a.journal.reveals,
		"remaining": a.machine.Remaining(),
		"duration":  a.now().Sub(start).String(),
	})
	return runErr
}

func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
	_ = a.logger.Close()
}
