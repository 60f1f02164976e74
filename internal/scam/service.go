package scam

import (
	"context"
	"time"

	"github.com/google/uuid"

	"scamcheck/backend/internal/cache"
	"scamcheck/backend/internal/history"
	"scamcheck/backend/internal/models"
	"scamcheck/backend/internal/realtime"
)

// Service wraps the checker with the optional operational pieces: verdict
// cache, usage store, session history, and the realtime hub. Cache, Store and
// Hub may be nil; the check path works without them.
type Service struct {
	Checker *Checker
	Store   *Store
	Cache   *cache.Cache
	Hub     *realtime.Hub
	History *history.Log
}

func NewService(checker *Checker, store *Store, verdicts *cache.Cache, hub *realtime.Hub, log *history.Log) *Service {
	return &Service{Checker: checker, Store: store, Cache: verdicts, Hub: hub, History: log}
}

// Check analyzes one message and returns the record. Like the checker itself
// it never fails: cache and store errors are absorbed.
func (s *Service) Check(ctx context.Context, text string) *models.CheckRecord {
	start := time.Now()

	var result *AnalysisResult
	source := SourceCache
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, text); err == nil && cached != nil {
			result = cached
		}
	}
	if result == nil {
		result, source = s.Checker.Check(ctx, text)
		if s.Cache != nil {
			_ = s.Cache.Set(ctx, text, result)
		}
	}

	record := &models.CheckRecord{
		ID:        uuid.NewString(),
		Result:    *result,
		Source:    string(source),
		LatencyMS: time.Since(start).Milliseconds(),
		CheckedAt: time.Now().UTC(),
	}

	if s.History != nil {
		s.History.Append(record)
	}
	if s.Store != nil {
		_ = s.Store.InsertUsage(ctx, models.UsageEntry{
			ID:        record.ID,
			Source:    record.Source,
			Success:   true,
			LatencyMS: record.LatencyMS,
			CreatedAt: record.CheckedAt,
		})
	}
	if s.Hub != nil {
		s.Hub.Broadcast(map[string]any{
			"type":   "check.result",
			"record": record,
		})
	}
	return record
}
