package implementation

import (
	"context"
	"errors"

	"supernote-be/internal/entity"
	"supernote-be/internal/mapper"
	"supernote-be/internal/model"
	"supernote-be/internal/repository/contract"
	"supernote-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TeamMapper
}

func NewTeamRepository(db *gorm.DB) contract.TeamRepository {
	return &TeamRepositoryImpl{
		db:     db,
		mapper: mapper.NewTeamMapper(),
	}
}

func (r *TeamRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) Update(ctx context.Context, team *entity.Team) error {
	m := r.mapper.ToModel(team)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*team = *r.mapper.ToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Team{}, id).Error
}

func (r *TeamRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Team, error) {
	var m model.Team
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TeamRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Team, error) {
	var models []*model.Team
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TeamRepositoryImpl) AddMember(ctx context.Context, member *entity.TeamMember) error {
	m := r.mapper.MemberToModel(member)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*member = *r.mapper.MemberToEntity(m)
	return nil
}

func (r *TeamRepositoryImpl) RemoveMember(ctx context.Context, teamId, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamId, userId).
		Delete(&model.TeamMember{}).Error
}

func (r *TeamRepositoryImpl) RemoveAllMembers(ctx context.Context, teamId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("team_id = ?", teamId).
		Delete(&model.TeamMember{}).Error
}

func (r *TeamRepositoryImpl) FindMember(ctx context.Context, teamId, userId uuid.UUID) (*entity.TeamMember, error) {
	var m model.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamId, userId).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.MemberToEntity(&m), nil
}

func (r *TeamRepositoryImpl) FindMembers(ctx context.Context, teamId uuid.UUID) ([]*entity.TeamMember, error) {
	var models []*model.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamId).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.MembersToEntities(models), nil
}
