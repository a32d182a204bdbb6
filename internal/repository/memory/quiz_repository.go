package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"supernote-be/pkg/aiparse"
)

// StoredQuiz is a generated quiz kept only until its TTL runs out. Quizzes
// are transient by design: they are regenerated from note text on demand.
type StoredQuiz struct {
	ID        string
	Questions []aiparse.QuizQuestion
	Source    string
	CreatedAt time.Time
}

type QuizRepository struct {
	cache *cache.Cache
}

func NewQuizRepository(ttl time.Duration) *QuizRepository {
	c := cache.New(ttl, 10*time.Minute)
	return &QuizRepository{
		cache: c,
	}
}

func (r *QuizRepository) Save(quiz *StoredQuiz) {
	r.cache.Set(quiz.ID, quiz, cache.DefaultExpiration)
}

func (r *QuizRepository) Get(quizID string) (*StoredQuiz, bool) {
	if x, found := r.cache.Get(quizID); found {
		return x.(*StoredQuiz), true
	}
	return nil, false
}

func (r *QuizRepository) Delete(quizID string) {
	r.cache.Delete(quizID)
}
