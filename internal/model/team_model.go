package model

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	OwnerId   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Team) TableName() string {
	return "teams"
}

type TeamMember struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	TeamId    uuid.UUID `gorm:"type:uuid;not null;index:idx_team_user,unique"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_team_user,unique"`
	Role      string    `gorm:"type:varchar(50);not null;default:'member'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
