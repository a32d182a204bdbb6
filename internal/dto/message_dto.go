package dto

import "github.com/google/uuid"

// PublishActivityMessage is the payload carried on the in-process activity
// bus between the domain services and the consumer.
type PublishActivityMessage struct {
	UserId  uuid.UUID `json:"user_id"`
	Action  string    `json:"action"`
	Subject string    `json:"subject"`
	Detail  string    `json:"detail"`
}
