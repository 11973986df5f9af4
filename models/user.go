package models

// User represents a registered account
type User struct {
	ID             uint   `gorm:"primaryKey;column:user_id" json:"id"`
	Email          string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Username       string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password       string `gorm:"column:pw_hash;not null" json:"-"`
	Bio            string `json:"bio"`
	Location       string `json:"location"`
	ImageURL       string `gorm:"column:image_url" json:"image_url"`
	HeaderImageURL string `gorm:"column:header_image_url" json:"header_image_url"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
