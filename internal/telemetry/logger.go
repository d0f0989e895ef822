// Package telemetry writes the game's event log as JSON lines.
package telemetry

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Event names written by the app.
const (
	EventAppStart    = "app.start"
	EventAppStop     = "app.stop"
	EventBoardReveal = "board.reveal"
	EventBoardClose  = "board.close"
	EventBoardMiss   = "board.miss"
	EventJournalFail = "journal.error"
)

type JSONLogger struct {
	mu    sync.Mutex
	w     io.WriteCloser
	base  map[string]any
	debug bool
	now   func() time.Time
}

// NewJSONLogger appends to path, or discards everything when path is empty.
func NewJSONLogger(path string) (*JSONLogger, error) {
	if path == "" {
		return newLogger(nopCloser{Writer: io.Discard}), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return newLogger(f), nil
}

// NewWriterLogger logs to w. Close does not close w.
func NewWriterLogger(w io.Writer) *JSONLogger {
	return newLogger(nopCloser{Writer: w})
}

func newLogger(w io.WriteCloser) *JSONLogger {
	return &JSONLogger{w: w, base: map[string]any{}, now: time.Now}
}

// SetDebug enables Debug entries.
func (l *JSONLogger) SetDebug(on bool) {
	l.mu.Lock()
	l.debug = on
	l.mu.Unlock()
}

// Bind adds a field to every later entry, e.g. the session id.
func (l *JSONLogger) Bind(key string, value any) {
	l.mu.Lock()
	l.base[key] = value
	l.mu.Unlock()
}

func (l *JSONLogger) Debug(msg string, fields map[string]any) {
	l.log("debug", msg, fields)
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	l.log("info", msg, fields)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	l.log("error", msg, fields)
}

func (l *JSONLogger) log(level, msg string, fields map[string]any) {
	if l == nil || l.w == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if level == "debug" && !l.debug {
		return
	}
	entry := make(map[string]any, len(l.base)+len(fields)+3)
	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}
	entry["ts"] = l.now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["msg"] = msg
	b, _ := json.Marshal(entry)
	_, _ = l.w.Write(append(b, '\n'))
}

func (l *JSONLogger) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
