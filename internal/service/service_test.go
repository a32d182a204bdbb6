package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"supernote-be/internal/entity"
	"supernote-be/internal/model"
	"supernote-be/internal/repository/memory"
	"supernote-be/internal/repository/unitofwork"
	"supernote-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubProvider records every prompt it receives and replies with a canned
// response, so tests can assert on both sides of the LLM boundary.
type stubProvider struct {
	response string
	err      error
	prompts  []string
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if len(history) > 0 {
		p.prompts = append(p.prompts, history[len(history)-1].Content)
	}
	return p.response, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	p.prompts = append(p.prompts, prompt)
	return p.response, p.err
}

func (p *stubProvider) lastPrompt() string {
	if len(p.prompts) == 0 {
		return ""
	}
	return p.prompts[len(p.prompts)-1]
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// newTestDB opens a private in-memory SQLite database. cache=shared keeps all
// pooled connections pointed at the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.TeamMember{},
		&model.Topic{},
		&model.Note{},
		&model.FactCheck{},
		&model.ActivityLog{},
	))

	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

func seedUser(t *testing.T, factory unitofwork.RepositoryFactory, username string) *entity.User {
	t.Helper()

	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	uow := factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.UserRepository().Create(context.Background(), user))
	return user
}

func seedNote(t *testing.T, factory unitofwork.RepositoryFactory, userId uuid.UUID, header, topic, sum, provider string) *entity.Note {
	t.Helper()

	now := time.Now()
	note := &entity.Note{
		Id:         uuid.New(),
		Header:     header,
		Topic:      topic,
		Sum:        sum,
		Provider:   provider,
		UserId:     userId,
		CreatedAt:  now,
		LastUpdate: now,
	}
	uow := factory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.NoteRepository().Create(context.Background(), note))
	return note
}

func newTestAiService(provider llm.LLMProvider) IAiService {
	return NewAiService(provider, memory.NewQuizRepository(time.Minute), "English")
}
