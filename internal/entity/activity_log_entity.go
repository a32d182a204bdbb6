package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Action    string
	Subject   string
	Detail    string
	CreatedAt time.Time
}
