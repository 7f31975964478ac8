// Package renderlog appends one NDJSON record per served page render.
package renderlog

import (
	"bufio"
	"encoding/json"
	"os"
	"sync"

	"apibanner/internal/runid"
)

type Record struct {
	RunID     string `json:"run_id"`
	Timestamp string `json:"ts"`
	Type      string `json:"type"`
	Method    string `json:"method,omitempty"`
	Path      string `json:"path,omitempty"`
	Remote    string `json:"remote,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Status    int    `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Logger is safe for concurrent use. A nil *Logger discards records.
type Logger struct {
	mu sync.Mutex
	f  *os.File
	w  *bufio.Writer
}

func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logger{
		f: f,
		w: bufio.NewWriterSize(f, 64*1024),
	}, nil
}

func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.w != nil {
		_ = l.w.Flush()
		l.w = nil
	}
	if l.f != nil {
		err := l.f.Close()
		l.f = nil
		return err
	}
	return nil
}

// Log appends rec as one JSON line, stamping Timestamp when the caller left it empty.
func (l *Logger) Log(rec Record) {
	if l == nil {
		return
	}
	if rec.Timestamp == "" {
		rec.Timestamp = runid.NowTS()
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.w == nil {
		return
	}
	line, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_, _ = l.w.Write(append(line, '\n'))
	_ = l.w.Flush()
}
