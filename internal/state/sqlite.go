package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			quiz_title TEXT NOT NULL,
			quiz_path TEXT NOT NULL DEFAULT '',
			frontend TEXT NOT NULL DEFAULT 'terminal',
			start_ts TEXT NOT NULL,
			end_ts TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS reveals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			cell INTEGER NOT NULL,
			category TEXT NOT NULL,
			row_index INTEGER NOT NULL,
			value INTEGER NOT NULL,
			revealed_ts TEXT NOT NULL,
			closed_ts TEXT NOT NULL DEFAULT '',
			UNIQUE(session_id, cell),
			FOREIGN KEY(session_id) REFERENCES sessions(id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) StartSession(ctx context.Context, sess Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions(id, quiz_title, quiz_path, frontend, start_ts) VALUES(?,?,?,?,?)`,
		sess.ID,
		sess.QuizTitle,
		sess.QuizPath,
		strings.TrimSpace(sess.Frontend),
		sess.StartTS.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) EndSession(ctx context.Context, sessionID string, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `UPDATE sessions SET end_ts = ? WHERE id = ?`, at.UTC().Format(timeLayout), sessionID)
	return err
}

// RecordReveal stores an opened clue. A cell can be opened once per session.
func (s *SQLiteStore) RecordReveal(ctx context.Context, r RevealRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO reveals(session_id, cell, category, row_index, value, revealed_ts) VALUES(?,?,?,?,?,?)`,
		r.SessionID,
		r.Cell,
		r.Category,
		r.Row,
		r.Value,
		r.RevealedTS.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("record reveal: %w", err)
	}
	return res.LastInsertId()
}

func (s *SQLiteStore) RecordClose(ctx context.Context, revealID int64, at time.Time) error {
	_, err := s.db.ExecContext(ctx, `UPDATE reveals SET closed_ts = ? WHERE id = ?`, at.UTC().Format(timeLayout), revealID)
	return err
}

func (s *SQLiteStore) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.quiz_title, s.quiz_path, s.frontend, s.start_ts, s.end_ts, COUNT(r.id)
		FROM sessions s
		LEFT JOIN reveals r ON r.session_id = s.id
		GROUP BY s.id
		ORDER BY s.start_ts DESC, s.id
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SessionSummary, 0)
	for rows.Next() {
		var sum SessionSummary
		var startRaw, endRaw string
		if err := rows.Scan(&sum.ID, &sum.QuizTitle, &sum.QuizPath, &sum.Frontend, &startRaw, &endRaw, &sum.Reveals); err != nil {
			return nil, err
		}
		sum.StartTS = parseTS(startRaw)
		sum.EndTS = parseTS(endRaw)
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) GetReveals(ctx context.Context, sessionID string) ([]RevealRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, cell, category, row_index, value, revealed_ts, closed_ts
		FROM reveals
		WHERE session_id = ?
		ORDER BY id`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RevealRecord, 0)
	for rows.Next() {
		var r RevealRecord
		var revealedRaw, closedRaw string
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Cell, &r.Category, &r.Row, &r.Value, &revealedRaw, &closedRaw); err != nil {
			return nil, err
		}
		r.RevealedTS = parseTS(revealedRaw)
		r.ClosedTS = parseTS(closedRaw)
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func parseTS(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

var _ Store = (*SQLiteStore)(nil)
