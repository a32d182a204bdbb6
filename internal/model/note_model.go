package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Header     string     `gorm:"type:varchar(255);not null;index"`
	Topic      string     `gorm:"type:varchar(255);index"`
	Sum        string     `gorm:"type:text"`
	Provider   string     `gorm:"type:varchar(255)"`
	Favorite   bool       `gorm:"default:false"`
	IsSuper    bool       `gorm:"default:false;index"`
	TopicId    *uuid.UUID `gorm:"type:uuid;index"`
	UserId     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	LastUpdate time.Time  `gorm:"autoUpdateTime"`
}

func (Note) TableName() string {
	return "notes"
}
