package service

import (
	"context"
	"fmt"

	"supernote-be/internal/dto"
	"supernote-be/internal/pkg/serverutils"
	"supernote-be/internal/repository/memory"
	"supernote-be/pkg/aiparse"
	"supernote-be/pkg/llm"

	"github.com/google/uuid"
)

// Fixed confidence scores reported alongside freeform model output. The
// model is not asked to rate itself for these operations.
const (
	formatConfidence    = 0.9
	summarizeConfidence = 0.85
	enhanceConfidence   = 0.85
)

type IAiService interface {
	FormatText(ctx context.Context, req *dto.FormatTextRequest) (*dto.FormatTextResponse, error)
	Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error)
	EnhanceNote(ctx context.Context, req *dto.EnhanceNoteRequest) (*dto.EnhanceNoteResponse, error)
	FactCheck(ctx context.Context, req *dto.FactCheckRequest) (*dto.FactCheckResponse, error)
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
	GetQuiz(quizId string) (*dto.GenerateQuizResponse, error)

	// FactCheckText and Condense are the raw building blocks shared with the
	// note services.
	FactCheckText(ctx context.Context, text, language string) (*aiparse.FactCheckResult, error)
	Condense(ctx context.Context, text, option string) (string, error)
	CombineAndSummarize(ctx context.Context, topic, combinedSum string) (string, error)
}

type aiService struct {
	provider        llm.LLMProvider
	quizRepository  *memory.QuizRepository
	defaultLanguage string
}

func NewAiService(provider llm.LLMProvider, quizRepository *memory.QuizRepository, defaultLanguage string) IAiService {
	return &aiService{
		provider:        provider,
		quizRepository:  quizRepository,
		defaultLanguage: defaultLanguage,
	}
}

func (s *aiService) language(requested string) string {
	if requested != "" {
		return requested
	}
	return s.defaultLanguage
}

func (s *aiService) FormatText(ctx context.Context, req *dto.FormatTextRequest) (*dto.FormatTextResponse, error) {
	prompt := fmt.Sprintf(
		"Please clean up the formatting of this extracted text. "+
			"Fix line breaks and make it human-readable. Respond in %s:\n\n%s",
		s.language(req.Language), req.Text,
	)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, serverutils.Upstream("formatting text", err)
	}

	return &dto.FormatTextResponse{Text: result, Confidence: formatConfidence}, nil
}

func (s *aiService) Summarize(ctx context.Context, req *dto.SummarizeRequest) (*dto.SummarizeResponse, error) {
	prompt := fmt.Sprintf(
		"Please summarize the following lecture into short, clean bullet points. "+
			"Make sure all key ideas are kept. Respond in %s:\n\n%s",
		s.language(req.Language), req.Text,
	)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, serverutils.Upstream("summarizing text", err)
	}

	return &dto.SummarizeResponse{Summary: result, Confidence: summarizeConfidence}, nil
}

func (s *aiService) EnhanceNote(ctx context.Context, req *dto.EnhanceNoteRequest) (*dto.EnhanceNoteResponse, error) {
	prompt := fmt.Sprintf(
		"Please enhance the following note content by:\n"+
			"1. Adding relevant details and context\n"+
			"2. Improving structure and readability\n"+
			"3. Suggesting additional points to consider\n"+
			"4. Maintaining the original meaning and intent\n"+
			"Respond in %s:\n\n%s",
		s.language(req.Language), req.Text,
	)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, serverutils.Upstream("enhancing note", err)
	}

	return &dto.EnhanceNoteResponse{Text: result, Confidence: enhanceConfidence}, nil
}

func (s *aiService) FactCheckText(ctx context.Context, text, language string) (*aiparse.FactCheckResult, error) {
	prompt := fmt.Sprintf(`Please fact-check the following content and provide:
1. Overall accuracy assessment (VERIFIED, QUESTIONABLE, or INACCURATE)
2. Specific claims that need verification
3. Sources or references where possible
4. Confidence level (0-100%%)

Content to fact-check:
%s

Respond in %s, in JSON format:
{
  "overall_status": "VERIFIED|QUESTIONABLE|INACCURATE",
  "confidence": 85,
  "claims": [
    {
      "claim": "specific claim text",
      "status": "VERIFIED|QUESTIONABLE|INACCURATE",
      "explanation": "why this claim is accurate/questionable/inaccurate",
      "sources": ["source1", "source2"]
    }
  ],
  "summary": "overall summary of fact-check results"
}`, text, s.language(language))

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, serverutils.Upstream("fact-checking text", err)
	}

	result := aiparse.ParseFactCheck(raw)
	return &result, nil
}

func (s *aiService) FactCheck(ctx context.Context, req *dto.FactCheckRequest) (*dto.FactCheckResponse, error) {
	result, err := s.FactCheckText(ctx, req.Text, req.Language)
	if err != nil {
		return nil, err
	}

	return &dto.FactCheckResponse{
		Status:     result.Status,
		Confidence: result.Confidence,
		Claims:     result.Claims,
		Summary:    result.Summary,
		Source:     result.Kind.String(),
	}, nil
}

func (s *aiService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	questions := req.Questions
	if questions <= 0 {
		questions = 5
	}

	prompt := fmt.Sprintf(
		"Please create a quiz with %d multiple-choice questions based on the following content. "+
			"Each question should have 4 options labeled A), B), C), D). "+
			"Distribute the correct answers randomly — do not always use A). "+
			"At the end of each question, indicate the correct answer clearly in the format 'Answer: X' where X is one letter. "+
			"Format strictly like this:\n\n"+
			"1. Question text?\n"+
			"A) Option A\n"+
			"B) Option B\n"+
			"C) Option C\n"+
			"D) Option D\n"+
			"Answer: B\n\n"+
			"Respond in %s:\n\n%s",
		questions, s.language(req.Language), req.Text,
	)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return nil, serverutils.Upstream("generating quiz", err)
	}

	parsed := aiparse.ParseQuiz(raw)

	stored := &memory.StoredQuiz{
		ID:        uuid.New().String(),
		Questions: parsed.Questions,
		Source:    parsed.Kind.String(),
	}
	s.quizRepository.Save(stored)

	return &dto.GenerateQuizResponse{
		QuizId:    stored.ID,
		Questions: parsed.Questions,
		Source:    parsed.Kind.String(),
		Dropped:   parsed.DroppedBlocks,
	}, nil
}

func (s *aiService) GetQuiz(quizId string) (*dto.GenerateQuizResponse, error) {
	stored, found := s.quizRepository.Get(quizId)
	if !found {
		return nil, serverutils.NotFound("Quiz not found or expired")
	}

	return &dto.GenerateQuizResponse{
		QuizId:    stored.ID,
		Questions: stored.Questions,
		Source:    stored.Source,
	}, nil
}

func (s *aiService) Condense(ctx context.Context, text, option string) (string, error) {
	systemPrompt := "Your job is to summarize the provided text in a clear and concise way, maintaining the key points."
	structureOutput := "Respond in text format only, without any additional formatting or HTML tags."

	prompt := fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\nThis is the user's option: %s.\n"+
			"If the option relates to input formatting or instructions, please follow it.",
		systemPrompt, structureOutput, text, option,
	)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", serverutils.Upstream("generating summary", err)
	}
	return result, nil
}

func (s *aiService) CombineAndSummarize(ctx context.Context, topic, combinedSum string) (string, error) {
	systemPrompt := "Your job is combine and summarize the provided text in a clear and concise way, maintaining the key points."
	structureOutput := "Respond in text format only, without any additional formatting or HTML tags."

	prompt := fmt.Sprintf("%s %s'%s': %s", systemPrompt, structureOutput, topic, combinedSum)

	result, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		return "", serverutils.Upstream("combining notes", err)
	}
	return result, nil
}
