package providers

import (
	"context"
	"errors"
	"time"

	cohere "github.com/cohere-ai/cohere-go"

	"scamcheck/backend/internal/scam/contract"
)

type CohereProvider struct {
	client    *cohere.Client
	config    *contract.ProviderConfig
	lastUsage contract.UsageStats
}

func NewCohereProvider(config *contract.ProviderConfig) *CohereProvider {
	client, _ := cohere.CreateClient(config.APIKey)
	return &CohereProvider{client: client, config: config}
}

func (c *CohereProvider) Name() string { return "cohere" }

func (c *CohereProvider) GetConfig() *contract.ProviderConfig { return c.config }

func (c *CohereProvider) GetUsage(ctx context.Context) (*contract.UsageStats, error) {
	return &c.lastUsage, nil
}

func (c *CohereProvider) Classify(ctx context.Context, message string) (*contract.AnalysisResult, error) {
	if c.client == nil {
		return nil, errors.New("cohere client not initialized")
	}
	// The generate API has no system role, so the instruction rides in the
	// prompt itself.
	prompt := classifyInstruction + "\n\nMessage: " + message

	start := time.Now()
	maxTokens := uint(c.config.MaxTokens)
	temperature := c.config.Temperature
	response, err := c.client.Generate(cohere.GenerateOptions{
		Model:       c.config.ModelName,
		Prompt:      prompt,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		c.captureFailure()
		return nil, err
	}
	c.captureUsage(start)
	if response == nil || len(response.Generations) == 0 {
		return nil, errors.New("empty response")
	}
	return parseVerdict(extractJSON(response.Generations[0].Text))
}

func (c *CohereProvider) HealthCheck(ctx context.Context) (*contract.HealthCheckResult, error) {
	if c.client == nil {
		return &contract.HealthCheckResult{
			Status:       "error",
			ErrorMessage: "cohere client not initialized",
			Timestamp:    time.Now().UTC(),
		}, errors.New("cohere client not initialized")
	}

	start := time.Now()
	maxTokens := uint(10)
	temperature := 0.0
	_, err := c.client.Generate(cohere.GenerateOptions{
		Model:       c.config.ModelName,
		Prompt:      "Respond with: OK",
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
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

func (c *CohereProvider) captureUsage(start time.Time) {
	latency := time.Since(start)
	c.lastUsage.TotalRequests++
	c.lastUsage.SuccessfulRequests++
	c.lastUsage.AverageLatency = averageLatency(c.lastUsage.AverageLatency, latency, c.lastUsage.SuccessfulRequests)
}

func (c *CohereProvider) captureFailure() {
	c.lastUsage.TotalRequests++
	c.lastUsage.FailedRequests++
}
