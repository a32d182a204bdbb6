package service

import (
	"context"
	"testing"

	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizResponse = `1. What is the capital of France?
A) Berlin
B) Paris
C) Madrid
D) Rome
Answer: B

2. Which planet is known as the Red Planet?
A) Venus
B) Jupiter
C) Mars
D) Saturn
Answer: C
`

func TestGenerateQuizParsesAndStores(t *testing.T) {
	provider := &stubProvider{response: quizResponse}
	svc := newTestAiService(provider)
	ctx := context.Background()

	result, err := svc.GenerateQuiz(ctx, &dto.GenerateQuizRequest{Text: "lecture about planets", Questions: 2})
	require.NoError(t, err)
	assert.NotEmpty(t, result.QuizId)
	assert.Equal(t, "structured", result.Source)
	assert.Equal(t, 0, result.Dropped)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, "B", result.Questions[0].CorrectAnswer)

	assert.Contains(t, provider.lastPrompt(), "2 multiple-choice questions")
	assert.Contains(t, provider.lastPrompt(), "lecture about planets")

	stored, err := svc.GetQuiz(result.QuizId)
	require.NoError(t, err)
	assert.Equal(t, result.QuizId, stored.QuizId)
	assert.Len(t, stored.Questions, 2)
}

func TestGetQuizMissing(t *testing.T) {
	svc := newTestAiService(&stubProvider{})

	var apiErr *serverutils.ApiError
	_, err := svc.GetQuiz("no-such-quiz")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestGenerateQuizDefaultsToFiveQuestions(t *testing.T) {
	provider := &stubProvider{response: quizResponse}
	svc := newTestAiService(provider)

	_, err := svc.GenerateQuiz(context.Background(), &dto.GenerateQuizRequest{Text: "content"})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt(), "5 multiple-choice questions")
}

func TestCondensePassesOptionThrough(t *testing.T) {
	provider := &stubProvider{response: "condensed"}
	svc := newTestAiService(provider)

	result, err := svc.Condense(context.Background(), "raw text", "keep it short")
	require.NoError(t, err)
	assert.Equal(t, "condensed", result)
	assert.Contains(t, provider.lastPrompt(), "raw text")
	assert.Contains(t, provider.lastPrompt(), "This is the user's option: keep it short.")
}

func TestLanguageDefaulting(t *testing.T) {
	provider := &stubProvider{response: "ok"}
	svc := newTestAiService(provider)
	ctx := context.Background()

	res, err := svc.Summarize(ctx, &dto.SummarizeRequest{Text: "text"})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt(), "Respond in English")
	assert.InDelta(t, 0.85, res.Confidence, 0.001)

	_, err = svc.Summarize(ctx, &dto.SummarizeRequest{Text: "text", Language: "Indonesian"})
	require.NoError(t, err)
	assert.Contains(t, provider.lastPrompt(), "Respond in Indonesian")
}

func TestFactCheckDegradedFallback(t *testing.T) {
	provider := &stubProvider{response: "The content looks VERIFIED to me, no issues found."}
	svc := newTestAiService(provider)

	result, err := svc.FactCheck(context.Background(), &dto.FactCheckRequest{Text: "some claim"})
	require.NoError(t, err)
	assert.Equal(t, "verified", result.Status)
	assert.Equal(t, 85, result.Confidence)
	assert.Equal(t, "degraded", result.Source)
}
