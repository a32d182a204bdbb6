package entity

import (
	"time"

	"github.com/google/uuid"
)

// Note is a single summarized note. Supernotes live in the same table,
// distinguished by IsSuper: they are combinations of regular notes and keep
// the same legacy document shape when rendered.
type Note struct {
	Id         uuid.UUID
	Header     string
	Topic      string
	Sum        string
	Provider   string
	Favorite   bool
	IsSuper    bool
	TopicId    *uuid.UUID
	UserId     uuid.UUID
	CreatedAt  time.Time
	LastUpdate time.Time
}
