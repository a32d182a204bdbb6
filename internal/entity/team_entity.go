package entity

import (
	"time"

	"github.com/google/uuid"
)

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleMember TeamRole = "member"
)

type Team struct {
	Id        uuid.UUID
	Name      string
	OwnerId   uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TeamMember struct {
	Id        uuid.UUID
	TeamId    uuid.UUID
	UserId    uuid.UUID
	Role      TeamRole
	CreatedAt time.Time
}
