package entity

import (
	"time"

	"github.com/google/uuid"

	"supernote-be/pkg/aiparse"
)

// FactCheck is a stored verification run against a note. Claims are kept as
// the parsed claim list; Source records whether the model answer was
// structured JSON or a degraded keyword read.
type FactCheck struct {
	Id         uuid.UUID
	NoteId     uuid.UUID
	UserId     uuid.UUID
	Status     string
	Confidence float64 // 0..1
	Claims     []aiparse.FactClaim
	Summary    string
	Source     string
	CreatedAt  time.Time
}
