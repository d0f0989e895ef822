package state

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLite(filepath.Join(t.TempDir(), "nested", "journal.db"))
	if err != nil {
		t.Fatalf("new sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func TestSessionRevealAndClose(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	start := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)

	if err := store.StartSession(ctx, Session{ID: "s1", QuizTitle: "Test", QuizPath: "quiz.yaml", Frontend: "terminal", StartTS: start}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	id, err := store.RecordReveal(ctx, RevealRecord{SessionID: "s1", Cell: 16, Category: "C", Row: 3, Value: 800, RevealedTS: start.Add(time.Minute)})
	if err != nil {
		t.Fatalf("record reveal: %v", err)
	}
	if err := store.RecordClose(ctx, id, start.Add(2*time.Minute)); err != nil {
		t.Fatalf("record close: %v", err)
	}

	reveals, err := store.GetReveals(ctx, "s1")
	if err != nil {
		t.Fatalf("get reveals: %v", err)
	}
	if len(reveals) != 1 {
		t.Fatalf("expected 1 reveal, got %d", len(reveals))
	}
	got := reveals[0]
	if got.Cell != 16 || got.Category != "C" || got.Row != 3 || got.Value != 800 {
		t.Fatalf("unexpected reveal %+v", got)
	}
	if !got.ClosedTS.Equal(start.Add(2 * time.Minute)) {
		t.Fatalf("unexpected closed ts %v", got.ClosedTS)
	}
}

func TestRevealIsUniquePerSessionCell(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	now := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)
	if err := store.StartSession(ctx, Session{ID: "s1", QuizTitle: "Test", StartTS: now}); err != nil {
		t.Fatal(err)
	}
	r := RevealRecord{SessionID: "s1", Cell: 1, Category: "A", Row: 0, Value: 200, RevealedTS: now}
	if _, err := store.RecordReveal(ctx, r); err != nil {
		t.Fatal(err)
	}
	if _, err := store.RecordReveal(ctx, r); err == nil {
		t.Fatalf("expected duplicate reveal to be rejected")
	}
}

func TestListSessionsNewestFirstWithCounts(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "new"} {
		if err := store.StartSession(ctx, Session{ID: id, QuizTitle: "Q", StartTS: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatal(err)
		}
	}
	for cell := 1; cell <= 3; cell++ {
		if _, err := store.RecordReveal(ctx, RevealRecord{SessionID: "new", Cell: cell, Category: "A", Row: cell - 1, Value: 200 * cell, RevealedTS: base}); err != nil {
			t.Fatal(err)
		}
	}
	if err := store.EndSession(ctx, "old", base.Add(30*time.Minute)); err != nil {
		t.Fatal(err)
	}

	sessions, err := store.ListSessions(ctx, 10)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].ID != "new" || sessions[0].Reveals != 3 {
		t.Fatalf("unexpected newest session %+v", sessions[0])
	}
	if sessions[1].Reveals != 0 || sessions[1].EndTS.IsZero() {
		t.Fatalf("unexpected oldest session %+v", sessions[1])
	}
	if !sessions[0].EndTS.IsZero() {
		t.Fatalf("expected open session to have no end time")
	}
}
