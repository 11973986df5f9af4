package repositories_test

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"api/database"
	"api/models"
	"api/repositories"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, repo repositories.UserRepository, username, email string) *models.User {
	t.Helper()

	user := &models.User{Username: username, Email: email, Password: "hash"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	createUser(t, repo, "bob", "bob@x.com")

	err := repo.Create(&models.User{Username: "robert", Email: "bob@x.com", Password: "hash"})
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestFindByEmail(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	created := createUser(t, repo, "bob", "bob@x.com")

	found, err := repo.FindByEmail("bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestSearch_SubstringAndLimit(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	for i := 0; i < 10; i++ {
		createUser(t, repo, fmt.Sprintf("alice%d", i), fmt.Sprintf("alice%d@x.com", i))
	}
	createUser(t, repo, "bob", "bob@x.com")

	users, err := repo.Search("ali", 7)
	require.NoError(t, err)
	assert.Len(t, users, 7)
	for _, u := range users {
		assert.Contains(t, u.Username, "ali")
	}

	users, err = repo.Search("zzz", 7)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestFollowUnfollow(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	a := createUser(t, repo, "a", "a@x.com")
	b := createUser(t, repo, "b", "b@x.com")

	require.NoError(t, repo.Follow(a.ID, b.ID))

	following, err := repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, following)

	followedBy, err := repo.IsFollowedBy(b.ID, a.ID)
	require.NoError(t, err)
	assert.True(t, followedBy)

	reverse, err := repo.IsFollowing(b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, reverse)

	require.NoError(t, repo.Unfollow(a.ID, b.ID))

	following, err = repo.IsFollowing(a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, following)

	assert.ErrorIs(t, repo.Unfollow(a.ID, b.ID), repositories.ErrNotFound)
}

func TestFollow_SelfRejected(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	a := createUser(t, repo, "a", "a@x.com")
	assert.ErrorIs(t, repo.Follow(a.ID, a.ID), repositories.ErrSelfFollow)
}

func TestFollow_DuplicateEdge(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	a := createUser(t, repo, "a", "a@x.com")
	b := createUser(t, repo, "b", "b@x.com")

	require.NoError(t, repo.Follow(a.ID, b.ID))
	assert.ErrorIs(t, repo.Follow(a.ID, b.ID), repositories.ErrDuplicate)
}

func TestFollow_MissingUser(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	a := createUser(t, repo, "a", "a@x.com")
	assert.ErrorIs(t, repo.Follow(a.ID, 999), repositories.ErrNotFound)
	assert.ErrorIs(t, repo.Follow(999, a.ID), repositories.ErrNotFound)
}

func TestFollowersAndFollowing(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	a := createUser(t, repo, "a", "a@x.com")
	b := createUser(t, repo, "b", "b@x.com")
	c := createUser(t, repo, "c", "c@x.com")

	require.NoError(t, repo.Follow(a.ID, c.ID))
	require.NoError(t, repo.Follow(b.ID, c.ID))
	require.NoError(t, repo.Follow(c.ID, a.ID))

	followers, err := repo.Followers(c.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := repo.Following(c.ID)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, a.ID, following[0].ID)
}

func TestUpdateProfile(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	user := createUser(t, repo, "bob", "bob@x.com")

	updated, err := repo.UpdateProfile(user.ID, "new@x.com", "bobby", "img", "header")
	require.NoError(t, err)
	assert.Equal(t, "new@x.com", updated.Email)
	assert.Equal(t, "bobby", updated.Username)
	assert.Equal(t, "img", updated.ImageURL)
	assert.Equal(t, "header", updated.HeaderImageURL)

	_, err = repo.UpdateProfile(999, "e", "u", "", "")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUpdateProfile_TakenEmail(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))

	createUser(t, repo, "a", "a@x.com")
	b := createUser(t, repo, "b", "b@x.com")

	_, err := repo.UpdateProfile(b.ID, "a@x.com", "b", "", "")
	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestDeleteUser_CascadeCompleteness(t *testing.T) {
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	a := createUser(t, userRepo, "a", "a@x.com")
	b := createUser(t, userRepo, "b", "b@x.com")

	msgA := &models.Message{Text: "from a", Timestamp: time.Now(), UserID: a.ID}
	require.NoError(t, messageRepo.Create(msgA))
	msgB := &models.Message{Text: "from b", Timestamp: time.Now(), UserID: b.ID}
	require.NoError(t, messageRepo.Create(msgB))

	require.NoError(t, messageRepo.Like(b.ID, msgA.ID))
	require.NoError(t, messageRepo.Like(a.ID, msgB.ID))
	require.NoError(t, messageRepo.CreateComment(&models.Comment{Text: "b on a", Timestamp: time.Now(), UserID: b.ID, MessageID: msgA.ID}))
	require.NoError(t, messageRepo.CreateComment(&models.Comment{Text: "a on b", Timestamp: time.Now(), UserID: a.ID, MessageID: msgB.ID}))
	require.NoError(t, userRepo.Follow(a.ID, b.ID))
	require.NoError(t, userRepo.Follow(b.ID, a.ID))

	require.NoError(t, userRepo.Delete(a.ID))

	_, err := userRepo.FindByID(a.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	var count int64
	db.Model(&models.Message{}).Where("author_id = ?", a.ID).Count(&count)
	assert.Zero(t, count, "messages owned by the deleted user must be gone")

	db.Model(&models.Like{}).Where("user_id = ? OR message_id = ?", a.ID, msgA.ID).Count(&count)
	assert.Zero(t, count, "likes by the user and on their messages must be gone")

	db.Model(&models.Comment{}).Where("user_id = ? OR message_id = ?", a.ID, msgA.ID).Count(&count)
	assert.Zero(t, count, "comments by the user and on their messages must be gone")

	db.Model(&models.Follow{}).Where("follower_id = ? OR followed_id = ?", a.ID, a.ID).Count(&count)
	assert.Zero(t, count, "follow edges in both directions must be gone")

	// b's own content survives
	_, err = messageRepo.FindByID(msgB.ID)
	assert.NoError(t, err)
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo := repositories.NewUserRepository(newTestDB(t))
	assert.ErrorIs(t, repo.Delete(999), repositories.ErrNotFound)
}

func TestLikedMessageIDs(t *testing.T) {
	db := newTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	messageRepo := repositories.NewMessageRepository(db)

	a := createUser(t, userRepo, "a", "a@x.com")
	b := createUser(t, userRepo, "b", "b@x.com")

	msg := &models.Message{Text: "hi", Timestamp: time.Now(), UserID: b.ID}
	require.NoError(t, messageRepo.Create(msg))
	require.NoError(t, messageRepo.Like(a.ID, msg.ID))

	ids, err := userRepo.LikedMessageIDs(a.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{msg.ID}, ids)
}
