package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"scamcheck/backend/internal/scam/contract"
)

// Cache deduplicates verdicts for identical message texts over a short TTL.
// It stores only the verdict keyed by a hash of the text, never the text.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisURL string, ttl time.Duration) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{client: redis.NewClient(opt), ttl: ttl}, nil
}

func (c *Cache) Get(ctx context.Context, text string) (*contract.AnalysisResult, error) {
	raw, err := c.client.Get(ctx, verdictKey(text)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var result contract.AnalysisResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Cache) Set(ctx context.Context, text string, result *contract.AnalysisResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, verdictKey(text), payload, c.ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func verdictKey(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(strings.ToLower(text))))
	return "scamcheck:verdict:" + hex.EncodeToString(sum[:])
}
