package dto

import (
	"strconv"

	"api/models"
)

// UserDTO is the external representation of a user. Relationship fields are
// rendered as string identities of the related records, not nested objects.
// The password hash is deliberately not part of it.
type UserDTO struct {
	ID             uint     `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	ImageURL       string   `json:"image_url"`
	HeaderImageURL string   `json:"header_image_url"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location"`
	Followers      []string `json:"followers"`
	Following      []string `json:"following"`
	Likes          []string `json:"likes"`
}

// NewUserDTO builds the canonical user representation from the user record
// and its materialized relationship sets.
func NewUserDTO(user *models.User, followers, following []models.User, likedMessageIDs []uint) UserDTO {
	return UserDTO{
		ID:             user.ID,
		Email:          user.Email,
		Username:       user.Username,
		ImageURL:       user.ImageURL,
		HeaderImageURL: user.HeaderImageURL,
		Bio:            user.Bio,
		Location:       user.Location,
		Followers:      userIDs(followers),
		Following:      userIDs(following),
		Likes:          formatIDs(likedMessageIDs),
	}
}

func userIDs(users []models.User) []string {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = strconv.FormatUint(uint64(u.ID), 10)
	}
	return ids
}

func formatIDs(ids []uint) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.FormatUint(uint64(id), 10)
	}
	return out
}
