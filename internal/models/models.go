package models

import (
	"time"

	"scamcheck/backend/internal/scam/contract"
)

// CheckRecord is one analyzed message as returned to API callers and kept in
// the in-memory session history.
type CheckRecord struct {
	ID        string                  `json:"id"`
	Result    contract.AnalysisResult `json:"result"`
	Source    string                  `json:"source"`
	LatencyMS int64                   `json:"latency_ms"`
	CheckedAt time.Time               `json:"checked_at"`
}

// UsageEntry is per-call telemetry written to the usage store. It carries no
// message text and no verdict.
type UsageEntry struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	Success      bool      `json:"success"`
	LatencyMS    int64     `json:"latency_ms"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type UsageSummary struct {
	TotalChecks      int64   `json:"total_checks"`
	RemoteChecks     int64   `json:"remote_checks"`
	HeuristicChecks  int64   `json:"heuristic_checks"`
	CacheHits        int64   `json:"cache_hits"`
	AverageLatencyMS float64 `json:"average_latency_ms"`
}

type ProviderHealth struct {
	Status    string    `json:"status"`
	LatencyMS int64     `json:"latency_ms"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}
