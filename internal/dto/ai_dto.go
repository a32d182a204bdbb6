package dto

import "supernote-be/pkg/aiparse"

type FormatTextRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

type FormatTextResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type SummarizeRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

type SummarizeResponse struct {
	Summary    string  `json:"summary"`
	Confidence float64 `json:"confidence"`
}

type EnhanceNoteRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

type EnhanceNoteResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

type FactCheckRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language"`
}

type FactCheckResponse struct {
	Status     string              `json:"status"`
	Confidence int                 `json:"confidence"`
	Claims     []aiparse.FactClaim `json:"claims"`
	Summary    string              `json:"summary"`
	Source     string              `json:"source"`
}

type GenerateQuizRequest struct {
	Text      string `json:"text" validate:"required"`
	Questions int    `json:"questions"`
	Language  string `json:"language"`
}

type GenerateQuizResponse struct {
	QuizId    string                 `json:"quiz_id"`
	Questions []aiparse.QuizQuestion `json:"questions"`
	Source    string                 `json:"source"`
	Dropped   int                    `json:"dropped"`
}
