package model

import (
	"time"

	"github.com/google/uuid"
)

type FactCheck struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey"`
	NoteId     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	Status     string    `gorm:"type:varchar(50);not null"`
	Confidence float64   `gorm:"not null"`
	// Claims is the parsed claim list serialized as JSON text.
	ClaimsJSON string    `gorm:"type:text;column:claims"`
	Summary    string    `gorm:"type:text"`
	Source     string    `gorm:"type:varchar(50);not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (FactCheck) TableName() string {
	return "fact_checks"
}
