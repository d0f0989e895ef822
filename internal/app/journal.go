package app

import (
	"context"
	"time"

	"jeopardy/internal/board"
	"jeopardy/internal/state"
	"jeopardy/internal/telemetry"
)

// journal is the machine's Listener: it logs every transition and, when a
// store is configured, records it against the current session.
type journal struct {
	ctx       context.Context
	store     state.Store
	logger    *telemetry.JSONLogger
	sessionID string
	now       func() time.Time

	open    map[board.Cell]int64
	reveals int
}

func newJournal(store state.Store, logger *telemetry.JSONLogger, sessionID string) *journal {
	return &journal{
		ctx:       context.Background(),
		store:     store,
		logger:    logger,
		sessionID: sessionID,
		now:       time.Now,
		open:      map[board.Cell]int64{},
	}
}

func (j *journal) ClueRevealed(r board.Reveal) {
	j.reveals++
	j.logger.Info(telemetry.EventBoardReveal, map[string]any{
		"cell":     int(r.Cell),
		"category": r.Category,
		"row":      r.Row,
		"value":    r.Value,
	})
	if j.store == nil {
		return
	}
	id, err := j.store.RecordReveal(j.ctx, state.RevealRecord{
		SessionID:  j.sessionID,
		Cell:       int(r.Cell),
		Category:   r.Category,
		Row:        r.Row,
		Value:      r.Value,
		RevealedTS: j.now(),
	})
	if err != nil {
		j.logger.Error(telemetry.EventJournalFail, map[string]any{"op": "reveal", "cell": int(r.Cell), "error": err.Error()})
		return
	}
	j.open[r.Cell] = id
}

func (j *journal) ClueClosed(cell board.Cell) {
	j.logger.Info(telemetry.EventBoardClose, map[string]any{"cell": int(cell)})
	id, ok := j.open[cell]
	if !ok || j.store == nil {
		return
	}
	delete(j.open, cell)
	if err := j.store.RecordClose(j.ctx, id, j.now()); err != nil {
		j.logger.Error(telemetry.EventJournalFail, map[string]any{"op": "close", "cell": int(cell), "error": err.Error()})
	}
}

var _ board.Listener = (*journal)(nil)
