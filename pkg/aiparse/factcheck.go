package aiparse

import (
	"encoding/json"
	"strings"
)

// Fact-check statuses as stored on note records.
const (
	StatusVerified     = "verified"
	StatusQuestionable = "questionable"
	StatusInaccurate   = "inaccurate"
	StatusPending      = "pending"
)

// FactClaim is one claim assessment inside a structured fact-check payload.
type FactClaim struct {
	Claim       string   `json:"claim"`
	Status      string   `json:"status"`
	Explanation string   `json:"explanation"`
	Sources     []string `json:"sources"`
}

// FactCheckResult is the outcome of interpreting a fact-check response.
// Confidence is on the model's 0-100 scale.
type FactCheckResult struct {
	Kind       ResultKind
	Reason     string // set when Kind is KindDegraded
	Status     string
	Confidence int
	Claims     []FactClaim
	Summary    string
}

type factCheckPayload struct {
	OverallStatus string      `json:"overall_status"`
	Confidence    *float64    `json:"confidence"`
	Claims        []FactClaim `json:"claims"`
	Summary       string      `json:"summary"`
}

// ParseFactCheck interprets a model fact-check response. It strips markdown
// code fences and attempts a JSON decode of the expected schema; on failure it
// degrades to scanning for the literal VERIFIED/INACCURATE tokens with fixed
// confidences.
func ParseFactCheck(raw string) FactCheckResult {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	var payload factCheckPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil {
		result := FactCheckResult{
			Kind:       KindStructured,
			Status:     payload.OverallStatus,
			Confidence: 75,
			Claims:     payload.Claims,
			Summary:    payload.Summary,
		}
		if payload.OverallStatus == "" {
			result.Status = "QUESTIONABLE"
		}
		if payload.Confidence != nil {
			result.Confidence = int(*payload.Confidence)
		}
		if payload.Summary == "" {
			result.Summary = raw
		}
		return result
	}

	// Keyword fallback: the response did not match the expected shape.
	result := FactCheckResult{
		Kind:       KindDegraded,
		Reason:     "response was not valid JSON",
		Status:     StatusQuestionable,
		Confidence: 75,
		Summary:    raw,
	}
	upper := strings.ToUpper(raw)
	if strings.Contains(upper, "VERIFIED") {
		result.Status = StatusVerified
		result.Confidence = 85
	} else if strings.Contains(upper, "INACCURATE") {
		result.Status = StatusInaccurate
		result.Confidence = 90
	}
	return result
}
