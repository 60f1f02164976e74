package history

import (
	"sync"

	"scamcheck/backend/internal/models"
)

// Log is a bounded in-memory session history. It lives and dies with the
// process; nothing is written to disk or a database.
type Log struct {
	mu      sync.Mutex
	entries []*models.CheckRecord
	limit   int
}

func New(limit int) *Log {
	if limit <= 0 {
		limit = 100
	}
	return &Log{limit: limit}
}

func (l *Log) Append(record *models.CheckRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, record)
	if len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// List returns records newest first.
func (l *Log) List() []*models.CheckRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]*models.CheckRecord, 0, len(l.entries))
	for i := len(l.entries) - 1; i >= 0; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
