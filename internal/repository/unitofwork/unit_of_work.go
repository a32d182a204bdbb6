package unitofwork

import (
	"context"

	"supernote-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	NoteRepository() contract.NoteRepository
	TeamRepository() contract.TeamRepository
	TopicRepository() contract.TopicRepository
	FactCheckRepository() contract.FactCheckRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
