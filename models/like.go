package models

// Like is an endorsement edge from a user to a message. The unique index
// keeps a user from liking the same message twice.
type Like struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"uniqueIndex:idx_like_once;not null" json:"user_id"`
	MessageID uint `gorm:"uniqueIndex:idx_like_once;not null" json:"message_id"`
}

// TableName overrides the table name used by GORM
func (Like) TableName() string {
	return "likes"
}
