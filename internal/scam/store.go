package scam

import (
	"context"
	"time"

	"scamcheck/backend/internal/db"
	"scamcheck/backend/internal/models"
)

// Store persists per-call usage telemetry and provider health snapshots.
// Analysis history stays in memory; nothing here records message text or
// verdicts.
type Store struct {
	DB *db.Store
}

func NewStore(store *db.Store) *Store {
	return &Store{DB: store}
}

// EnsureSchema creates the telemetry tables if they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.DB.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS check_usage (
			id            TEXT PRIMARY KEY,
			source        TEXT NOT NULL,
			success       BOOLEAN NOT NULL,
			latency_ms    BIGINT NOT NULL,
			error_message TEXT,
			created_at    TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS provider_health (
			id            BIGSERIAL PRIMARY KEY,
			status        TEXT NOT NULL,
			latency_ms    BIGINT NOT NULL,
			error_message TEXT,
			checked_at    TIMESTAMPTZ NOT NULL
		)`)
	return err
}

func (s *Store) InsertUsage(ctx context.Context, entry models.UsageEntry) error {
	_, err := s.DB.Pool.Exec(ctx, `
		INSERT INTO check_usage (id, source, success, latency_ms, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.Source, entry.Success, entry.LatencyMS, entry.ErrorMessage, entry.CreatedAt)
	return err
}

func (s *Store) UsageSummary(ctx context.Context) (*models.UsageSummary, error) {
	var summary models.UsageSummary
	row := s.DB.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE source = 'remote'),
		       COUNT(*) FILTER (WHERE source = 'heuristic'),
		       COUNT(*) FILTER (WHERE source = 'cache'),
		       COALESCE(AVG(latency_ms), 0)
		FROM check_usage`)
	if err := row.Scan(&summary.TotalChecks, &summary.RemoteChecks, &summary.HeuristicChecks, &summary.CacheHits, &summary.AverageLatencyMS); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Store) InsertHealth(ctx context.Context, health models.ProviderHealth) error {
	_, err := s.DB.Pool.Exec(ctx, `
		INSERT INTO provider_health (status, latency_ms, error_message, checked_at)
		VALUES ($1, $2, $3, $4)`,
		health.Status, health.LatencyMS, health.Error, health.CheckedAt)
	return err
}

func (s *Store) RecentHealthFailures(ctx context.Context, window time.Duration) (int, error) {
	var failures int
	row := s.DB.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM provider_health
		WHERE status = 'error' AND checked_at > $1`,
		time.Now().UTC().Add(-window))
	if err := row.Scan(&failures); err != nil {
		return 0, err
	}
	return failures, nil
}
