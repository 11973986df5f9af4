package repositories

import "api/models"

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	Search(query string, limit int) ([]models.User, error)
	All() ([]models.User, error)
	UpdateProfile(id uint, email, username, imageURL, headerImageURL string) (*models.User, error)
	Delete(id uint) error
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, otherID uint) (bool, error)
	Followers(userID uint) ([]models.User, error)
	Following(userID uint) ([]models.User, error)
	LikedMessageIDs(userID uint) ([]uint, error)
}

type MessageRepository interface {
	Create(message *models.Message) error
	FindByID(id uint) (*models.Message, error)
	GetByUserID(userID uint, limit int) ([]models.Message, error)
	Delete(id uint) error
	Like(userID, messageID uint) error
	Unlike(userID, messageID uint) error
	LikerIDs(messageID uint) ([]uint, error)
	CreateComment(comment *models.Comment) error
	GetComments(messageID uint) ([]models.Comment, error)
}
