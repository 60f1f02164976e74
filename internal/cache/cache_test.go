package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"scamcheck/backend/internal/scam/contract"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := New("redis://"+mr.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestVerdictRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	result := &contract.AnalysisResult{IsScam: true, Confidence: 88, Explanation: "asks for wire transfer"}
	if err := c.Set(ctx, "send money via western union", result); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := c.Get(ctx, "send money via western union")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil || got.IsScam != result.IsScam || got.Confidence != result.Confidence || got.Explanation != result.Explanation {
		t.Fatalf("unexpected cached verdict: %+v", got)
	}
}

func TestKeyNormalization(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	result := &contract.AnalysisResult{IsScam: false, Confidence: 95, Explanation: "benign"}
	if err := c.Set(ctx, "Hello there", result); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := c.Get(ctx, "  HELLO THERE ")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected hit for case-insensitive trimmed text")
	}
}

func TestMissReturnsNil(t *testing.T) {
	c := newTestCache(t)

	got, err := c.Get(context.Background(), "never stored")
	if err != nil {
		t.Fatalf("miss should not be an error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}
}

func TestEntryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c, err := New("redis://"+mr.Addr(), time.Second)
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}
	defer func() { _ = c.Close() }()
	ctx := context.Background()

	if err := c.Set(ctx, "short lived", &contract.AnalysisResult{Confidence: 50}); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	mr.FastForward(2 * time.Second)

	got, err := c.Get(ctx, "short lived")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatal("expected entry to expire")
	}
}
