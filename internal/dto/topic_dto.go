package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTopicRequest struct {
	Name   string     `json:"name" validate:"required,min=1"`
	TeamId *uuid.UUID `json:"team_id"`
}

type TopicResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	TeamId    *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type UpdateTopicRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,min=1"`
}
