package contract

import (
	"context"

	"supernote-be/internal/entity"
	"supernote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	Update(ctx context.Context, note *entity.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByTopicId(ctx context.Context, topicId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	// DistinctTopics returns the distinct topic values for a user's notes,
	// supernotes excluded.
	DistinctTopics(ctx context.Context, userId uuid.UUID) ([]string, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
