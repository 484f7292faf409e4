package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersService(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()
	signUp(t, env, "alice", "alice@example.com", "secret1")
	signUp(t, env, "bob", "bob@example.com", "secret1")

	svc := &UsersService{Users: env.repo}

	all, err := svc.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.GetUser(ctx, "bob")
	require.NoError(t, err)
	byEmail, err := svc.GetUser(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, byName.ID, byEmail.ID)

	_, err = svc.GetUser(ctx, "carol")
	assert.ErrorIs(t, err, ErrNotFound)
}
