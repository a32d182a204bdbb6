package contract

import (
	"context"

	"supernote-be/internal/entity"
	"supernote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FactCheckRepository interface {
	Create(ctx context.Context, check *entity.FactCheck) error
	DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FactCheck, error)
}
