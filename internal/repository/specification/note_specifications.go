package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByHeader filters notes by exact header
type ByHeader struct {
	Header string
}

func (s ByHeader) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("header = ?", s.Header)
}

// ByTopicName filters notes by the denormalized topic string
type ByTopicName struct {
	Topic string
}

func (s ByTopicName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic = ?", s.Topic)
}

// ByTopicId filters notes attached to a topic record
type ByTopicId struct {
	TopicId uuid.UUID
}

func (s ByTopicId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicId)
}

// SupernotesOnly restricts to combined notes; RegularOnly excludes them.
type SupernotesOnly struct{}

func (s SupernotesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_super = ?", true)
}

type RegularOnly struct{}

func (s RegularOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_super = ?", false)
}

// FavoritesOnly restricts to favorited notes
type FavoritesOnly struct{}

func (s FavoritesOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("favorite = ?", true)
}
