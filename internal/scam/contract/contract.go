package contract

import (
	"context"
	"time"
)

// Provider is a remote chat-completion backend able to produce a scam verdict
// for a single message. One call issues at most one outbound request.
type Provider interface {
	Name() string
	Classify(ctx context.Context, message string) (*AnalysisResult, error)
	HealthCheck(ctx context.Context) (*HealthCheckResult, error)
	GetConfig() *ProviderConfig
	GetUsage(ctx context.Context) (*UsageStats, error)
}

type ProviderConfig struct {
	ProviderName    string
	APIKey          string
	ModelName       string
	BaseURL         string
	Temperature     float64
	MaxTokens       int
	CostPer1KInput  float64
	CostPer1KOutput float64
}

// AnalysisResult is the fixed verdict contract shared with remote providers
// and the API surface. It is never mutated after construction.
type AnalysisResult struct {
	IsScam      bool    `json:"isScam"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// ClampConfidence forces Confidence into [0,100]. Applied on every path that
// produces a result, remote or local.
func (r *AnalysisResult) ClampConfidence() {
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 100 {
		r.Confidence = 100
	}
}

type HealthCheckResult struct {
	Status        string        `json:"status"`
	Latency       time.Duration `json:"latency"`
	EstimatedCost float64       `json:"estimated_cost"`
	ErrorMessage  string        `json:"error_message"`
	Timestamp     time.Time     `json:"timestamp"`
}

type UsageStats struct {
	TotalRequests      int64         `json:"total_requests"`
	SuccessfulRequests int64         `json:"successful_requests"`
	FailedRequests     int64         `json:"failed_requests"`
	TotalCost          float64       `json:"total_cost"`
	AverageLatency     time.Duration `json:"average_latency"`
}

type UsageRecord struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
	Latency      time.Duration
	Success      bool
	ErrorMessage string
}

func (u UsageRecord) InputCost(costPer1K float64) float64 {
	return (float64(u.InputTokens) / 1000.0) * costPer1K
}

func (u UsageRecord) OutputCost(costPer1K float64) float64 {
	return (float64(u.OutputTokens) / 1000.0) * costPer1K
}

func (u UsageRecord) TotalCost(costIn, costOut float64) float64 {
	return u.InputCost(costIn) + u.OutputCost(costOut)
}
