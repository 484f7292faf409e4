package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/idea_board/internal/transport"
)

func TestUsersEndpoints(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.signUp("alice", "alice@example.com")
	env.signUp("bob", "bob@example.com")

	rec := env.doJSON(http.MethodGet, "/user/users", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	users := decode[[]transport.UserResponse](t, rec)
	require.Len(t, users, 2)
	assert.ElementsMatch(t, []string{"alice", "bob"}, []string{users[0].Username, users[1].Username})
	assert.NotContains(t, rec.Body.String(), "password")

	rec = env.doJSON(http.MethodGet, "/user/bob@example.com", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", decode[transport.UserResponse](t, rec).Username)

	rec = env.doJSON(http.MethodGet, "/user/carol", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
