package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"unicode/utf8"

	"api/dto"
	"api/models"
	"api/monitoring"
	"api/repositories"
)

const maxTextLength = 140

// MessageHandler handles message, like and comment endpoints
type MessageHandler struct {
	MessageRepo repositories.MessageRepository
	UserRepo    repositories.UserRepository
}

func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) *MessageHandler {
	return &MessageHandler{MessageRepo: messageRepo, UserRepo: userRepo}
}

// CreateMessage posts a new message for the user in the path
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r, "userID")
	if !ok {
		return
	}

	var requestData struct {
		Text     string `json:"text"`
		ImageURL string `json:"imageUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if requestData.Text == "" || utf8.RuneCountInString(requestData.Text) > maxTextLength {
		http.Error(w, `{"status": 400, "error_msg": "Text must be 1-140 characters"}`, http.StatusBadRequest)
		return
	}

	message := models.Message{
		Text:      requestData.Text,
		ImageURL:  requestData.ImageURL,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
	}
	if err := h.MessageRepo.Create(&message); err != nil {
		writeLookupError(w, err)
		return
	}

	monitoring.MessagesPosted.Inc()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto.NewMessageDTO(&message, nil))
}

// GetMessage returns a single message with its liker identities
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseID(w, r, "messageID")
	if !ok {
		return
	}

	message, err := h.MessageRepo.FindByID(messageID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	likerIDs, err := h.MessageRepo.LikerIDs(messageID)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"message": dto.NewMessageDTO(message, likerIDs)})
}

// DeleteMessage removes a message together with its likes and comments
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseID(w, r, "messageID")
	if !ok {
		return
	}

	if err := h.MessageRepo.Delete(messageID); err != nil {
		writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "message deleted"})
}

// LikeMessage records an endorsement; liking twice is a conflict
func (h *MessageHandler) LikeMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseID(w, r, "messageID")
	if !ok {
		return
	}

	var requestData struct {
		UserID uint `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}

	if err := h.MessageRepo.Like(requestData.UserID, messageID); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			http.Error(w, `{"status": 409, "error_msg": "Already liked"}`, http.StatusConflict)
			return
		}
		writeLookupError(w, err)
		return
	}

	monitoring.LikesCreated.Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "like added"})
}

// UnlikeMessage removes an endorsement
func (h *MessageHandler) UnlikeMessage(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseID(w, r, "messageID")
	if !ok {
		return
	}

	var requestData struct {
		UserID uint `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}

	if err := h.MessageRepo.Unlike(requestData.UserID, messageID); err != nil {
		writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "like removed"})
}

// CreateComment attaches a remark to a message
func (h *MessageHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseID(w, r, "messageID")
	if !ok {
		return
	}

	var requestData struct {
		UserID uint   `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if requestData.Text == "" || utf8.RuneCountInString(requestData.Text) > maxTextLength {
		http.Error(w, `{"status": 400, "error_msg": "Text must be 1-140 characters"}`, http.StatusBadRequest)
		return
	}

	comment := models.Comment{
		Text:      requestData.Text,
		Timestamp: time.Now().UTC(),
		UserID:    requestData.UserID,
		MessageID: messageID,
	}
	if err := h.MessageRepo.CreateComment(&comment); err != nil {
		writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto.NewCommentDTO(&comment))
}

// GetComments lists the comments on a message, oldest first
func (h *MessageHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	messageID, ok := parseID(w, r, "messageID")
	if !ok {
		return
	}

	if _, err := h.MessageRepo.FindByID(messageID); err != nil {
		writeLookupError(w, err)
		return
	}

	comments, err := h.MessageRepo.GetComments(messageID)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	serialized := make([]dto.CommentDTO, 0, len(comments))
	for i := range comments {
		serialized = append(serialized, dto.NewCommentDTO(&comments[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"comments": serialized})
}
