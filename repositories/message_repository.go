package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"api/models"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	if err := r.userExists(message.UserID); err != nil {
		return err
	}
	return r.db.Omit("User").Create(message).Error
}

func (r *messageRepository) userExists(id uint) error {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("find user by id %d: %w", id, err)
	}
	return nil
}

func (r *messageRepository) FindByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find message by id %d: %w", id, err)
	}
	return &message, nil
}

func (r *messageRepository) GetByUserID(userID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("author_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&messages).Error
	return messages, err
}

// Delete removes the message and its likes and comments in one transaction.
func (r *messageRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var message models.Message
		if err := tx.First(&message, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("message_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("message_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&message).Error
	})
}

func (r *messageRepository) Like(userID, messageID uint) error {
	if _, err := r.FindByID(messageID); err != nil {
		return err
	}
	if err := r.userExists(userID); err != nil {
		return err
	}

	like := models.Like{UserID: userID, MessageID: messageID}
	if err := r.db.Create(&like).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("like message %d: %w", messageID, err)
	}
	return nil
}

func (r *messageRepository) Unlike(userID, messageID uint) error {
	result := r.db.Where("user_id = ? AND message_id = ?", userID, messageID).
		Delete(&models.Like{})
	if result.Error != nil {
		return fmt.Errorf("unlike message %d: %w", messageID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) LikerIDs(messageID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Like{}).
		Where("message_id = ?", messageID).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (r *messageRepository) CreateComment(comment *models.Comment) error {
	if _, err := r.FindByID(comment.MessageID); err != nil {
		return err
	}
	if err := r.userExists(comment.UserID); err != nil {
		return err
	}
	return r.db.Create(comment).Error
}

func (r *messageRepository) GetComments(messageID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("message_id = ?", messageID).
		Order("timestamp ASC").
		Find(&comments).Error
	return comments, err
}
