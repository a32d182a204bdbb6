package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTeamId filters rows belonging to a team
type ByTeamId struct {
	TeamId uuid.UUID
}

func (s ByTeamId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("team_id = ?", s.TeamId)
}

// MemberOf filters team rows to those the user belongs to, owner or member.
type MemberOf struct {
	UserId uuid.UUID
}

func (s MemberOf) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"id IN (SELECT team_id FROM team_members WHERE user_id = ?) OR owner_id = ?",
		s.UserId, s.UserId,
	)
}
