package aiparse

import (
	"regexp"
	"strings"
)

// QuizQuestion is one parsed multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// QuizResult holds the accepted questions plus how many blocks were dropped.
// Kind is KindDegraded when any block failed validation, so callers can see
// that the model response did not fully match the expected shape.
type QuizResult struct {
	Kind          ResultKind
	Questions     []QuizQuestion
	DroppedBlocks int
}

var (
	quizBlockRe  = regexp.MustCompile(`\n?(\d+)[.)] `)
	quizOptionRe = regexp.MustCompile(`^([A-D])[).]\s*(.*)`)
	answerRe     = regexp.MustCompile(`(?i)([A-D])`)
)

// ParseQuiz splits a model response on leading "number + delimiter" markers
// and validates each block. A block is accepted only when it yields exactly 4
// labeled options and a recognizable answer letter; anything else is dropped
// silently. Never returns an error: an unparseable response is an empty,
// degraded result.
func ParseQuiz(quizText string) QuizResult {
	var result QuizResult

	matches := quizBlockRe.FindAllStringIndex(quizText, -1)
	if len(matches) == 0 {
		if strings.TrimSpace(quizText) != "" {
			result.DroppedBlocks = 1
		}
		result.Kind = KindDegraded
		return result
	}

	for i, m := range matches {
		end := len(quizText)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		block := strings.TrimSpace(quizText[m[1]:end])
		if block == "" {
			continue
		}

		if q, ok := parseQuizBlock(block); ok {
			result.Questions = append(result.Questions, q)
		} else {
			result.DroppedBlocks++
		}
	}

	if result.DroppedBlocks > 0 || len(result.Questions) == 0 {
		result.Kind = KindDegraded
	}
	return result
}

func parseQuizBlock(block string) (QuizQuestion, bool) {
	lines := strings.Split(block, "\n")
	if len(lines) == 0 {
		return QuizQuestion{}, false
	}

	question := strings.TrimSpace(lines[0])
	var options []string
	var correctAnswer string

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToLower(line), "answer") {
			// Search past the "answer" keyword itself so its own letters
			// are not picked up as the answer.
			if m := answerRe.FindString(line[len("answer"):]); m != "" {
				correctAnswer = strings.ToUpper(m)
			}
		} else if m := quizOptionRe.FindStringSubmatch(line); m != nil {
			options = append(options, m[1]+") "+m[2])
		}
	}

	if len(options) != 4 || correctAnswer == "" {
		return QuizQuestion{}, false
	}

	return QuizQuestion{
		Question:      question,
		Options:       options,
		CorrectAnswer: correctAnswer,
	}, true
}
