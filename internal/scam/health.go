package scam

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"scamcheck/backend/internal/models"
)

// HealthMonitor probes the remote provider on a fixed interval and keeps the
// latest snapshot for the health endpoint. Probes are skipped while the
// checker is offline or the quota flag is set, so the monitor never burns
// quota on a path the checker would not take.
type HealthMonitor struct {
	Checker  *Checker
	Store    *Store
	Interval time.Duration
	Log      zerolog.Logger

	mu   sync.Mutex
	last *models.ProviderHealth
}

func (h *HealthMonitor) Run(ctx context.Context) {
	interval := h.Interval
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.runOnce(ctx)
		}
	}
}

func (h *HealthMonitor) runOnce(ctx context.Context) {
	if h.Checker.Offline() || h.Checker.Quota().Exceeded() {
		return
	}
	provider := h.Checker.Provider()
	if provider == nil {
		return
	}

	result, err := provider.HealthCheck(ctx)
	snapshot := models.ProviderHealth{
		Status:    "ok",
		CheckedAt: time.Now().UTC(),
	}
	if result != nil {
		snapshot.LatencyMS = result.Latency.Milliseconds()
	}
	if err != nil || result == nil {
		snapshot.Status = "error"
		if err != nil {
			snapshot.Error = err.Error()
		}
	} else if result.Latency > 3*time.Second {
		snapshot.Status = "slow"
	}

	h.mu.Lock()
	h.last = &snapshot
	h.mu.Unlock()

	if h.Store != nil {
		if err := h.Store.InsertHealth(ctx, snapshot); err != nil {
			h.Log.Debug().Err(err).Msg("failed to record provider health")
		}
	}
	if snapshot.Status != "ok" {
		h.Log.Warn().Str("status", snapshot.Status).Str("error", snapshot.Error).Msg("provider health degraded")
	}
}

// Status returns the most recent probe result, or nil before the first probe.
func (h *HealthMonitor) Status() *models.ProviderHealth {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return nil
	}
	snapshot := *h.last
	return &snapshot
}
