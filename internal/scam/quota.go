package scam

import "sync"

// QuotaState records that the remote service rejected a call because of usage
// limits. Once set it stays set for the process lifetime and every checker
// sharing it skips the remote attempt. There is no expiry; Reset exists for
// tests and the ops endpoint.
type QuotaState struct {
	mu       sync.Mutex
	exceeded bool
}

func (q *QuotaState) Exceeded() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.exceeded
}

func (q *QuotaState) MarkExceeded() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.exceeded = true
}

func (q *QuotaState) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.exceeded = false
}

var sharedQuota = &QuotaState{}

// SharedQuota returns the process-wide sticky failure flag used by checkers
// that are not given an explicit one.
func SharedQuota() *QuotaState {
	return sharedQuota
}
