package memory

import (
	"testing"
	"time"

	"supernote-be/pkg/aiparse"
)

func TestQuizRepositorySaveAndGet(t *testing.T) {
	repo := NewQuizRepository(time.Minute)

	quiz := &StoredQuiz{
		ID: "quiz-1",
		Questions: []aiparse.QuizQuestion{
			{Question: "Q?", Options: []string{"A) a", "B) b", "C) c", "D) d"}, CorrectAnswer: "A"},
		},
		Source: "structured",
	}
	repo.Save(quiz)

	got, found := repo.Get("quiz-1")
	if !found {
		t.Fatal("quiz not found after Save")
	}
	if got.ID != "quiz-1" || len(got.Questions) != 1 {
		t.Errorf("got %+v", got)
	}

	if _, found := repo.Get("missing"); found {
		t.Error("Get(missing) = found, want not found")
	}

	repo.Delete("quiz-1")
	if _, found := repo.Get("quiz-1"); found {
		t.Error("quiz still present after Delete")
	}
}

func TestQuizRepositoryExpiry(t *testing.T) {
	repo := NewQuizRepository(20 * time.Millisecond)

	repo.Save(&StoredQuiz{ID: "short-lived"})
	time.Sleep(50 * time.Millisecond)

	if _, found := repo.Get("short-lived"); found {
		t.Error("quiz should have expired")
	}
}
