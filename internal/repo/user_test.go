package repo

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Skotchmaster/idea_board/internal/db/dbtest"
	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()
	return &GormRepo{DB: dbtest.Open(t)}
}

func createTestUser(t *testing.T, r *GormRepo, username, email string) *models.User {
	t.Helper()
	u := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		IsActivated:  true,
	}
	require.NoError(t, r.CreateUser(context.Background(), u))
	return u
}

func TestGormRepo_CreateUser_AssignsIDAndTimestamp(t *testing.T) {
	r := newTestRepo(t)

	u := createTestUser(t, r, "user_test", "user@email.com")
	assert.NotEmpty(t, u.ID)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := r.GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "user_test", got.Username)
	assert.Nil(t, got.RefreshToken)
}

func TestGormRepo_CreateUser_Conflicts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	createTestUser(t, r, "user_test", "user@email.com")

	tests := []struct {
		name     string
		username string
		email    string
	}{
		{name: "same username", username: "user_test", email: "other@email.com"},
		{name: "same email", username: "other_user", email: "user@email.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.CreateUser(ctx, &models.User{Username: tt.username, Email: tt.email, PasswordHash: "hash"})
			assert.ErrorIs(t, err, ErrUserAlreadyExist)
		})
	}
}

func TestGormRepo_FindByLogin(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := createTestUser(t, r, "user_test", "user@email.com")

	byName, err := r.FindByLogin(ctx, "user_test")
	require.NoError(t, err)
	byEmail, err := r.FindByLogin(ctx, "user@email.com")
	require.NoError(t, err)

	assert.Equal(t, u.ID, byName.ID)
	assert.Equal(t, u.ID, byEmail.ID)

	_, err = r.FindByLogin(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormRepo_RefreshTokenLifecycle(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := createTestUser(t, r, "user_test", "user@email.com")

	require.NoError(t, r.SetRefreshToken(ctx, u.ID, "token-1"))

	found, err := r.FindByRefreshToken(ctx, "token-1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	ok, err := r.SwapRefreshToken(ctx, u.ID, "token-1", "token-2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.SwapRefreshToken(ctx, u.ID, "token-1", "token-3")
	require.NoError(t, err)
	assert.False(t, ok, "consumed token must not swap again")

	_, err = r.FindByRefreshToken(ctx, "token-1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, r.ClearRefreshToken(ctx, u.ID))
	_, err = r.FindByRefreshToken(ctx, "token-2")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := r.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got.RefreshToken)
}

func TestGormRepo_SwapRefreshToken_ConcurrentSingleWinner(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	u := createTestUser(t, r, "user_test", "user@email.com")
	require.NoError(t, r.SetRefreshToken(ctx, u.ID, "stale"))

	const workers = 8
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := r.SwapRefreshToken(ctx, u.ID, "stale", "fresh-"+string(rune('a'+i)))
			if err == nil && ok {
				wins.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestGormRepo_MissingUser(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	assert.ErrorIs(t, r.SetRefreshToken(ctx, "missing", "t"), ErrNotFound)
	assert.ErrorIs(t, r.ClearRefreshToken(ctx, "missing"), ErrNotFound)

	_, err := r.GetUserByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormRepo_ListUsers(t *testing.T) {
	r := newTestRepo(t)
	createTestUser(t, r, "first", "first@email.com")
	createTestUser(t, r, "second", "second@email.com")

	users, err := r.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
}
