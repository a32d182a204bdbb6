package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTeamRequest struct {
	Name string `json:"name" validate:"required,min=2"`
	// MemberEmails are invited on creation. Unknown addresses are skipped.
	MemberEmails []string `json:"member_emails"`
}

type UpdateTeamRequest struct {
	Id   uuid.UUID
	Name string `json:"name" validate:"required,min=2"`
}

type TeamResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerId   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddTeamMemberRequest struct {
	TeamId   uuid.UUID
	Username string `json:"username" validate:"required"`
}

type TeamMemberResponse struct {
	Id       uuid.UUID `json:"id"`
	UserId   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}
