package models

// Follow is a directed edge: follower observes the followed user's content.
// The composite primary key is the only guard against duplicate edges.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;column:follower_id" json:"follower_id"`
	FollowedID uint `gorm:"primaryKey;column:followed_id" json:"followed_id"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
