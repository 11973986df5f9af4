package dto

import (
	"time"

	"api/models"
)

// MessageDTO is the external representation of a message; likes are the
// string identities of the users who liked it.
type MessageDTO struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	ImageURL  string    `json:"imageUrl"`
	Timestamp time.Time `json:"timestamp"`
	Likes     []string  `json:"likes"`
	UserID    uint      `json:"user_id"`
}

func NewMessageDTO(message *models.Message, likerIDs []uint) MessageDTO {
	return MessageDTO{
		ID:        message.ID,
		Text:      message.Text,
		ImageURL:  message.ImageURL,
		Timestamp: message.Timestamp,
		Likes:     formatIDs(likerIDs),
		UserID:    message.UserID,
	}
}

// CommentDTO is the external representation of a comment
type CommentDTO struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	MessageID uint      `json:"message_id"`
	UserID    uint      `json:"user_id"`
}

func NewCommentDTO(comment *models.Comment) CommentDTO {
	return CommentDTO{
		ID:        comment.ID,
		Text:      comment.Text,
		Timestamp: comment.Timestamp,
		MessageID: comment.MessageID,
		UserID:    comment.UserID,
	}
}
