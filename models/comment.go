package models

import "time"

// Comment is a user's remark attached to a message
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	MessageID uint      `gorm:"not null;index" json:"message_id"`
}

// TableName overrides the table name used by GORM
func (Comment) TableName() string {
	return "comments"
}
