package state

import (
	"context"
	"time"
)

// Store records which clues were opened in each game session.
type Store interface {
	EnsureSchema(ctx context.Context) error
	StartSession(ctx context.Context, s Session) error
	EndSession(ctx context.Context, sessionID string, at time.Time) error
	RecordReveal(ctx context.Context, r RevealRecord) (int64, error)
	RecordClose(ctx context.Context, revealID int64, at time.Time) error
	ListSessions(ctx context.Context, limit int) ([]SessionSummary, error)
	GetReveals(ctx context.Context, sessionID string) ([]RevealRecord, error)
	Close() error
}

type Session struct {
	ID        string
	QuizTitle string
	QuizPath  string
	Frontend  string
	StartTS   time.Time
}

type SessionSummary struct {
	Session
	EndTS   time.Time
	Reveals int
}

type RevealRecord struct {
	ID         int64
	SessionID  string
	Cell       int
	Category   string
	Row        int
	Value      int
	RevealedTS time.Time
	ClosedTS   time.Time
}
