package models

import "time"

// Message represents a single post owned by a user
type Message struct {
	ID        uint      `gorm:"primaryKey;column:message_id" json:"id"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	ImageURL  string    `gorm:"column:image_url" json:"imageUrl"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	UserID    uint      `gorm:"column:author_id;not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
