package providers

import (
	"context"
	"errors"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"scamcheck/backend/internal/scam/contract"
)

type OpenAIProvider struct {
	client    openai.Client
	config    *contract.ProviderConfig
	lastUsage contract.UsageStats
}

func NewOpenAIProvider(config *contract.ProviderConfig) *OpenAIProvider {
	opts := []option.RequestOption{option.WithAPIKey(config.APIKey)}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	return &OpenAIProvider{
		client: openai.NewClient(opts...),
		config: config,
	}
}

func (o *OpenAIProvider) Name() string { return "openai" }

func (o *OpenAIProvider) GetConfig() *contract.ProviderConfig { return o.config }

func (o *OpenAIProvider) GetUsage(ctx context.Context) (*contract.UsageStats, error) {
	return &o.lastUsage, nil
}

// Classify issues exactly one chat-completion request; retries are left to
// the caller's next invocation.
func (o *OpenAIProvider) Classify(ctx context.Context, message string) (*contract.AnalysisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	start := time.Now()
	format := shared.NewResponseFormatJSONObjectParam()
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(o.config.ModelName),
		Temperature: openai.Float(o.config.Temperature),
		MaxTokens:   openai.Int(int64(o.config.MaxTokens)),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &format,
		},
		Messages: []openai.ChatCompletionMessageParamUnion{
			systemMessage(classifyInstruction),
			userMessage(message),
		},
	})
	if err != nil {
		o.captureFailure()
		return nil, err
	}
	o.captureUsage(start, resp.Usage)
	if len(resp.Choices) == 0 {
		return nil, errors.New("empty response")
	}
	return parseVerdict(resp.Choices[0].Message.Content)
}

func (o *OpenAIProvider) HealthCheck(ctx context.Context) (*contract.HealthCheckResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	start := time.Now()
	_, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(o.config.ModelName),
		Temperature: openai.Float(0),
		MaxTokens:   openai.Int(8),
		Messages: []openai.ChatCompletionMessageParamUnion{
			userMessage("Respond with: OK"),
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

func (o *OpenAIProvider) captureUsage(start time.Time, usage openai.CompletionUsage) {
	latency := time.Since(start)
	record := contract.UsageRecord{
		InputTokens:  int(usage.PromptTokens),
		OutputTokens: int(usage.CompletionTokens),
		TotalTokens:  int(usage.TotalTokens),
		Latency:      latency,
		Success:      true,
	}
	o.lastUsage.TotalRequests++
	o.lastUsage.SuccessfulRequests++
	o.lastUsage.TotalCost += record.TotalCost(o.config.CostPer1KInput, o.config.CostPer1KOutput)
	o.lastUsage.AverageLatency = averageLatency(o.lastUsage.AverageLatency, latency, o.lastUsage.SuccessfulRequests)
}

func (o *OpenAIProvider) captureFailure() {
	o.lastUsage.TotalRequests++
	o.lastUsage.FailedRequests++
}

func systemMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfSystem: &openai.ChatCompletionSystemMessageParam{
			Content: openai.ChatCompletionSystemMessageParamContentUnion{
				OfString: openai.String(content),
			},
		},
	}
}

func userMessage(content string) openai.ChatCompletionMessageParamUnion {
	return openai.ChatCompletionMessageParamUnion{
		OfUser: &openai.ChatCompletionUserMessageParam{
			Content: openai.ChatCompletionUserMessageParamContentUnion{
				OfString: openai.String(content),
			},
		},
	}
}
