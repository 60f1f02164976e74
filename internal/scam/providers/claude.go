package providers

import (
	"context"
	"errors"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"scamcheck/backend/internal/scam/contract"
)

type ClaudeProvider struct {
	client    anthropic.Client
	config    *contract.ProviderConfig
	lastUsage contract.UsageStats
}

func NewClaudeProvider(config *contract.ProviderConfig) *ClaudeProvider {
	return &ClaudeProvider{
		client: anthropic.NewClient(option.WithAPIKey(config.APIKey)),
		config: config,
	}
}

func (c *ClaudeProvider) Name() string { return "claude" }

func (c *ClaudeProvider) GetConfig() *contract.ProviderConfig { return c.config }

func (c *ClaudeProvider) GetUsage(ctx context.Context) (*contract.UsageStats, error) {
	return &c.lastUsage, nil
}

func (c *ClaudeProvider) Classify(ctx context.Context, message string) (*contract.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	start := time.Now()
	response, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.ModelName),
		MaxTokens:   int64(c.config.MaxTokens),
		Temperature: anthropic.Float(c.config.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: classifyInstruction},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(message)),
		},
	})
	if err != nil {
		c.captureFailure()
		return nil, err
	}
	if response == nil || len(response.Content) == 0 {
		return nil, errors.New("empty response")
	}
	c.captureUsage(start, response.Usage)
	return parseVerdict(extractJSON(response.Content[0].Text))
}

func (c *ClaudeProvider) HealthCheck(ctx context.Context) (*contract.HealthCheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	start := time.Now()
	_, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.config.ModelName),
		MaxTokens:   int64(32),
		Temperature: anthropic.Float(0),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock("Respond with: OK")),
		},
	})
	latency := time.Since(start)
	status := "ok"
	msg := ""
	if err != nil {
		status = "error"
		msg = err.Error()
	}
	return &contract.HealthCheckResult{
		Status:       status,
		Latency:      latency,
		ErrorMessage: msg,
		Timestamp:    time.Now().UTC(),
	}, err
}

func (c *ClaudeProvider) captureUsage(start time.Time, usage anthropic.Usage) {
	latency := time.Since(start)
	record := contract.UsageRecord{
		InputTokens:  int(usage.InputTokens),
		OutputTokens: int(usage.OutputTokens),
		TotalTokens:  int(usage.InputTokens + usage.OutputTokens),
		Latency:      latency,
		Success:      true,
	}
	c.lastUsage.TotalRequests++
	c.lastUsage.SuccessfulRequests++
	c.lastUsage.TotalCost += record.TotalCost(c.config.CostPer1KInput, c.config.CostPer1KOutput)
	c.lastUsage.AverageLatency = averageLatency(c.lastUsage.AverageLatency, latency, c.lastUsage.SuccessfulRequests)
}

func (c *ClaudeProvider) captureFailure() {
	c.lastUsage.TotalRequests++
	c.lastUsage.FailedRequests++
}
