package implementation

import (
	"context"

	"supernote-be/internal/entity"
	"supernote-be/internal/mapper"
	"supernote-be/internal/model"
	"supernote-be/internal/repository/contract"
	"supernote-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FactCheckRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FactCheckMapper
}

func NewFactCheckRepository(db *gorm.DB) contract.FactCheckRepository {
	return &FactCheckRepositoryImpl{
		db:     db,
		mapper: mapper.NewFactCheckMapper(),
	}
}

func (r *FactCheckRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FactCheckRepositoryImpl) Create(ctx context.Context, check *entity.FactCheck) error {
	m := r.mapper.ToModel(check)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*check = *r.mapper.ToEntity(m)
	return nil
}

func (r *FactCheckRepositoryImpl) DeleteAllByNoteId(ctx context.Context, noteId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("note_id = ?", noteId).Delete(&model.FactCheck{}).Error
}

func (r *FactCheckRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FactCheck, error) {
	var models []*model.FactCheck
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
