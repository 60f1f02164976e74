package providers

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"scamcheck/backend/internal/scam/contract"
)

// classifyInstruction is the fixed system prompt sent with every remote
// classification request.
const classifyInstruction = `You are an SMS fraud analyst. Decide whether the message the user sends is a scam or phishing attempt. Respond with a single JSON object with exactly these fields: "isScam" (boolean), "confidence" (number from 0 to 100), "explanation" (string summarizing the evidence). Respond with JSON only, no prose around it.`

// parseVerdict validates the remote payload strictly: all three fields must be
// present with the right types, otherwise the caller treats the call as failed.
func parseVerdict(content string) (*contract.AnalysisResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, errors.New("empty response")
	}
	var payload struct {
		IsScam      *bool    `json:"isScam"`
		Confidence  *float64 `json:"confidence"`
		Explanation *string  `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, err
	}
	if payload.IsScam == nil || payload.Confidence == nil || payload.Explanation == nil {
		return nil, errors.New("incomplete verdict payload")
	}
	return &contract.AnalysisResult{
		IsScam:      *payload.IsScam,
		Confidence:  *payload.Confidence,
		Explanation: *payload.Explanation,
	}, nil
}

// extractJSON trims any prose the model wrapped around the JSON object.
func extractJSON(text string) string {
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "}]")
	if start == -1 || end == -1 || end <= start {
		return text
	}
	return text[start : end+1]
}

func averageLatency(current time.Duration, next time.Duration, count int64) time.Duration {
	if count <= 1 {
		return next
	}
	return time.Duration(((current * time.Duration(count-1)) + next) / time.Duration(count))
}
