package dto

import "github.com/google/uuid"

type CreateSupernoteRequest struct {
	NoteIds  []uuid.UUID `json:"note_ids" validate:"required,min=2"`
	Language string      `json:"language"`
}
