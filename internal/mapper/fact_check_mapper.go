package mapper

import (
	"encoding/json"

	"supernote-be/internal/entity"
	"supernote-be/internal/model"
	"supernote-be/pkg/aiparse"
)

type FactCheckMapper struct{}

func NewFactCheckMapper() *FactCheckMapper {
	return &FactCheckMapper{}
}

func (m *FactCheckMapper) ToEntity(f *model.FactCheck) *entity.FactCheck {
	if f == nil {
		return nil
	}

	var claims []aiparse.FactClaim
	if f.ClaimsJSON != "" {
		// Best effort: a corrupt row surfaces as an empty claim list.
		_ = json.Unmarshal([]byte(f.ClaimsJSON), &claims)
	}

	return &entity.FactCheck{
		Id:         f.Id,
		NoteId:     f.NoteId,
		UserId:     f.UserId,
		Status:     f.Status,
		Confidence: f.Confidence,
		Claims:     claims,
		Summary:    f.Summary,
		Source:     f.Source,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FactCheckMapper) ToModel(f *entity.FactCheck) *model.FactCheck {
	if f == nil {
		return nil
	}

	claimsJSON := ""
	if len(f.Claims) > 0 {
		if raw, err := json.Marshal(f.Claims); err == nil {
			claimsJSON = string(raw)
		}
	}

	return &model.FactCheck{
		Id:         f.Id,
		NoteId:     f.NoteId,
		UserId:     f.UserId,
		Status:     f.Status,
		Confidence: f.Confidence,
		ClaimsJSON: claimsJSON,
		Summary:    f.Summary,
		Source:     f.Source,
		CreatedAt:  f.CreatedAt,
	}
}

func (m *FactCheckMapper) ToEntities(checks []*model.FactCheck) []*entity.FactCheck {
	entities := make([]*entity.FactCheck, len(checks))
	for i, f := range checks {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
