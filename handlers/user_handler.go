package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"api/auth"
	"api/dto"
	"api/models"
	"api/monitoring"
	"api/repositories"
)

// UserHandler handles account, profile and social-graph endpoints
type UserHandler struct {
	UserRepo    repositories.UserRepository
	MessageRepo repositories.MessageRepository
}

func NewUserHandler(userRepo repositories.UserRepository, messageRepo repositories.MessageRepository) *UserHandler {
	return &UserHandler{UserRepo: userRepo, MessageRepo: messageRepo}
}

// Register creates a new account. Duplicate emails are rejected before the
// password is ever hashed.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}

	exists, err := h.UserRepo.EmailExists(requestData.Email)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}
	if exists {
		http.Error(w, `{"status": 401, "error_msg": "User already exists"}`, http.StatusUnauthorized)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(requestData.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Error hashing password"}`, http.StatusInternalServerError)
		return
	}

	user := models.User{
		Username: requestData.Username,
		Email:    requestData.Email,
		Password: string(hashedPassword),
	}
	if err := h.UserRepo.Create(&user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			http.Error(w, `{"status": 401, "error_msg": "User already exists"}`, http.StatusUnauthorized)
			return
		}
		logrus.WithError(err).Error("Failed to create user")
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	monitoring.RegisterSuccess.Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"username": user.Username,
		"email":    user.Email,
	})
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same response so accounts cannot be enumerated.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var requestData struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}

	user, err := h.UserRepo.FindByEmail(requestData.Email)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
			return
		}
		monitoring.LoginFailure.WithLabelValues("unknown email").Inc()
		http.Error(w, `{"status": 401, "error_msg": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(requestData.Password)) != nil {
		monitoring.LoginFailure.WithLabelValues("wrong password").Inc()
		http.Error(w, `{"status": 401, "error_msg": "Unauthorized"}`, http.StatusUnauthorized)
		return
	}

	accessToken, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		logrus.WithError(err).Error("Failed to generate access token")
		http.Error(w, `{"status": 500, "error_msg": "Token error"}`, http.StatusInternalServerError)
		return
	}

	monitoring.LoginSuccess.Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":           user.ID,
		"username":     user.Username,
		"email":        user.Email,
		"access_token": accessToken,
	})
}

// ListUsers returns all users, or the users whose username contains the
// `q` substring, capped at 7 matches.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	var (
		users []models.User
		err   error
	)
	if search := r.URL.Query().Get("q"); search != "" {
		users, err = h.UserRepo.Search(search, 7)
	} else {
		users, err = h.UserRepo.All()
	}
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	serialized := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		userDTO, err := h.serializeUser(&users[i])
		if err != nil {
			http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
			return
		}
		serialized = append(serialized, userDTO)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"users": serialized})
}

// GetProfile returns the user together with up to 100 of their most
// recent messages.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.UserRepo.FindByID(userID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	messages, err := h.MessageRepo.GetByUserID(userID, 100)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	userDTO, err := h.serializeUser(user)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	serialized := make([]dto.MessageDTO, 0, len(messages))
	for i := range messages {
		likerIDs, err := h.MessageRepo.LikerIDs(messages[i].ID)
		if err != nil {
			http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
			return
		}
		serialized = append(serialized, dto.NewMessageDTO(&messages[i], likerIDs))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"user":     userDTO,
		"messages": serialized,
	})
}

// GetFollowers returns the profile of the user whose followers are shown
func (h *UserHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	h.serveProfile(w, r)
}

// GetFollowing returns the profile of the user whose followees are shown
func (h *UserHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	h.serveProfile(w, r)
}

func (h *UserHandler) serveProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r, "userID")
	if !ok {
		return
	}

	user, err := h.UserRepo.FindByID(userID)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	userDTO, err := h.serializeUser(user)
	if err != nil {
		http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"user": userDTO})
}

// FollowUser adds a follow edge from the requesting user to {followID}
func (h *UserHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	followedID, ok := parseID(w, r, "followID")
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

	if err := h.UserRepo.Follow(requestData.UserID, followedID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			http.Error(w, `{"status": 404, "error_msg": "User not found"}`, http.StatusNotFound)
		case errors.Is(err, repositories.ErrSelfFollow):
			http.Error(w, `{"status": 400, "error_msg": "Cannot follow yourself"}`, http.StatusBadRequest)
		case errors.Is(err, repositories.ErrDuplicate):
			http.Error(w, `{"status": 409, "error_msg": "Already following"}`, http.StatusConflict)
		default:
			http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		}
		return
	}

	monitoring.FollowsCreated.Inc()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"user": "following added"})
}

// UnfollowUser removes the follow edge from the requesting user to {followID}
func (h *UserHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	followedID, ok := parseID(w, r, "followID")
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

	if err := h.UserRepo.Unfollow(requestData.UserID, followedID); err != nil {
		writeLookupError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"user": "unfollowed user"})
}

// UpdateProfile overwrites the email, username and image fields. All four
// values are required; there is no partial update.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r, "userID")
	if !ok {
		return
	}

	var requestData struct {
		Email          string `json:"email"`
		Username       string `json:"username"`
		ImageURL       string `json:"image_url"`
		HeaderImageURL string `json:"header_image_url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestData); err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid JSON"}`, http.StatusBadRequest)
		return
	}

	_, err := h.UserRepo.UpdateProfile(userID,
		requestData.Email, requestData.Username,
		requestData.ImageURL, requestData.HeaderImageURL)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrNotFound):
			http.Error(w, `{"status": 404, "error_msg": "User not found"}`, http.StatusNotFound)
		case errors.Is(err, repositories.ErrDuplicateEmail):
			http.Error(w, `{"status": 409, "error_msg": "Email or username taken"}`, http.StatusConflict)
		default:
			http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"user": "edit user profile successful"})
}

// DeleteUser removes the account and everything hanging off it
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r, "userID")
	if !ok {
		return
	}

	if err := h.UserRepo.Delete(userID); err != nil {
		writeLookupError(w, err)
		return
	}

	logrus.WithField("user_id", userID).Info("User account deleted")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"user": "user account deleted"})
}

func (h *UserHandler) serializeUser(user *models.User) (dto.UserDTO, error) {
	followers, err := h.UserRepo.Followers(user.ID)
	if err != nil {
		return dto.UserDTO{}, err
	}
	following, err := h.UserRepo.Following(user.ID)
	if err != nil {
		return dto.UserDTO{}, err
	}
	likedIDs, err := h.UserRepo.LikedMessageIDs(user.ID)
	if err != nil {
		return dto.UserDTO{}, err
	}
	return dto.NewUserDTO(user, followers, following, likedIDs), nil
}

func parseID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	if err != nil {
		http.Error(w, `{"status": 400, "error_msg": "Invalid ID"}`, http.StatusBadRequest)
		return 0, false
	}
	return uint(id), true
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		http.Error(w, `{"status": 404, "error_msg": "Not found"}`, http.StatusNotFound)
		return
	}
	http.Error(w, `{"status": 500, "error_msg": "Database error"}`, http.StatusInternalServerError)
}
