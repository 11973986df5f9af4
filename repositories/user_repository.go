package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"api/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id %d: %w", id, err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users by email: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) Search(query string, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Where("username LIKE ?", "%"+query+"%").
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) All() ([]models.User, error) {
	var users []models.User
	err := r.db.Find(&users).Error
	return users, err
}

// UpdateProfile overwrites the four profile fields unconditionally. Partial
// updates are not supported; callers must send all of them.
func (r *userRepository) UpdateProfile(id uint, email, username, imageURL, headerImageURL string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id %d: %w", id, err)
	}

	user.Email = email
	user.Username = username
	user.ImageURL = imageURL
	user.HeaderImageURL = headerImageURL

	if err := r.db.Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return &user, nil
}

// Delete removes the user together with their messages, likes, comments and
// follow edges. The whole cascade runs in one transaction so a failure
// mid-sequence leaves no orphaned rows.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var messageIDs []uint
		if err := tx.Model(&models.Message{}).Where("author_id = ?", id).
			Pluck("message_id", &messageIDs).Error; err != nil {
			return err
		}
		if len(messageIDs) > 0 {
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&models.Like{}).Error; err != nil {
				return err
			}
			if err := tx.Where("message_id IN ?", messageIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR followed_id = ?", id, id).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (r *userRepository) Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return ErrSelfFollow
	}
	for _, id := range []uint{followerID, followedID} {
		if _, err := r.FindByID(id); err != nil {
			return err
		}
	}

	follow := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.Create(&follow).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("follow %d -> %d: %w", followerID, followedID, err)
	}
	return nil
}

func (r *userRepository) Unfollow(followerID, followedID uint) error {
	result := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return fmt.Errorf("unfollow %d -> %d: %w", followerID, followedID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) IsFollowedBy(userID, otherID uint) (bool, error) {
	return r.IsFollowing(otherID, userID)
}

func (r *userRepository) Followers(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN follows ON follows.follower_id = users.user_id").
		Where("follows.followed_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Following(userID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Joins("INNER JOIN follows ON follows.followed_id = users.user_id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *userRepository) LikedMessageIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("message_id", &ids).Error
	return ids, err
}

// isUniqueViolation matches the unique-constraint error strings of the
// drivers in use (postgres in production, sqlite in tests).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
