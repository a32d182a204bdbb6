package mapper

import (
	"supernote-be/internal/entity"
	"supernote-be/internal/model"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}

	return &entity.Note{
		Id:         n.Id,
		Header:     n.Header,
		Topic:      n.Topic,
		Sum:        n.Sum,
		Provider:   n.Provider,
		Favorite:   n.Favorite,
		IsSuper:    n.IsSuper,
		TopicId:    n.TopicId,
		UserId:     n.UserId,
		CreatedAt:  n.CreatedAt,
		LastUpdate: n.LastUpdate,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}

	return &model.Note{
		Id:         n.Id,
		Header:     n.Header,
		Topic:      n.Topic,
		Sum:        n.Sum,
		Provider:   n.Provider,
		Favorite:   n.Favorite,
		IsSuper:    n.IsSuper,
		TopicId:    n.TopicId,
		UserId:     n.UserId,
		CreatedAt:  n.CreatedAt,
		LastUpdate: n.LastUpdate,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}

func (m *NoteMapper) ToModels(notes []*entity.Note) []*model.Note {
	models := make([]*model.Note, len(notes))
	for i, n := range notes {
		models[i] = m.ToModel(n)
	}
	return models
}
