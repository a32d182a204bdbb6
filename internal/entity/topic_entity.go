package entity

import (
	"time"

	"github.com/google/uuid"
)

type Topic struct {
	Id        uuid.UUID
	Name      string
	TeamId    *uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
