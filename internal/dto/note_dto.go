package dto

import (
	"time"

	"github.com/google/uuid"

	"supernote-be/pkg/aiparse"
)

type SummarizeAndSaveRequest struct {
	Header       string `json:"header" validate:"required"`
	Topic        string `json:"topic"`
	Text         string `json:"text" validate:"required"`
	Provider     string `json:"provider"`
	OptionPrompt string `json:"option_prompt"`
	Language     string `json:"language"`
}

type NoteResponse struct {
	Id         uuid.UUID  `json:"id"`
	Header     string     `json:"header"`
	Topic      string     `json:"topic"`
	Sum        string     `json:"sum"`
	Provider   string     `json:"provider"`
	Favorite   bool       `json:"favorite"`
	IsSuper    bool       `json:"is_super"`
	TopicId    *uuid.UUID `json:"topic_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUpdate time.Time  `json:"last_update"`
}

type NotesByHeaderRequest struct {
	Header string `json:"header" validate:"required"`
}

type NotesByTopicRequest struct {
	Topic string `json:"topic" validate:"required"`
}

type UpdateNoteRequest struct {
	Id     uuid.UUID
	Header string `json:"header"`
	Topic  string `json:"topic"`
	Sum    string `json:"sum"`
}

type IngestDocumentResponse struct {
	Id       uuid.UUID `json:"id"`
	Header   string    `json:"header"`
	Sum      string    `json:"sum"`
	Text     string    `json:"text"`
	Engine   string    `json:"engine"`
	Provider string    `json:"provider"`
}

type FactCheckNoteResponse struct {
	Id         uuid.UUID           `json:"id"`
	NoteId     uuid.UUID           `json:"note_id"`
	Status     string              `json:"status"`
	Confidence float64             `json:"confidence"` // 0..1
	Claims     []aiparse.FactClaim `json:"claims"`
	Summary    string              `json:"summary"`
	Source     string              `json:"source"`
	CreatedAt  time.Time           `json:"created_at"`
}

type ActivityLogResponse struct {
	Id        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
