package contract

import (
	"context"

	"supernote-be/internal/entity"
	"supernote-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TeamRepository interface {
	Create(ctx context.Context, team *entity.Team) error
	Update(ctx context.Context, team *entity.Team) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error)

	AddMember(ctx context.Context, member *entity.TeamMember) error
	RemoveMember(ctx context.Context, teamId, userId uuid.UUID) error
	RemoveAllMembers(ctx context.Context, teamId uuid.UUID) error
	FindMember(ctx context.Context, teamId, userId uuid.UUID) (*entity.TeamMember, error)
	FindMembers(ctx context.Context, teamId uuid.UUID) ([]*entity.TeamMember, error)
}
