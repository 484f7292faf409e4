package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/idea_board/internal/db/dbtest"
	"github.com/Skotchmaster/idea_board/internal/jwtmiddleware"
	"github.com/Skotchmaster/idea_board/internal/repo"
	"github.com/Skotchmaster/idea_board/internal/service"
	"github.com/Skotchmaster/idea_board/internal/tokens"
	"github.com/Skotchmaster/idea_board/internal/validation"
)

type testEnv struct {
	t    *testing.T
	e    *echo.Echo
	repo *repo.GormRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := &repo.GormRepo{DB: dbtest.Open(t)}
	issuer := &tokens.Issuer{
		AccessSecret:  []byte("test-access-secret"),
		RefreshSecret: []byte("test-refresh-secret"),
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    time.Hour,
	}
	sessions := &service.SessionManager{Users: store, Tokens: issuer}

	e := echo.New()
	e.Validator = validation.New()
	e.HTTPErrorHandler = ErrorHandler

	Register(e, &Deps{
		AuthHandler:  &AuthHTTP{Svc: service.NewAuthService(store, sessions, nil)},
		UsersHandler: &UsersHTTP{Svc: &service.UsersService{Users: store}},
		IdeaHandler:  &IdeaHTTP{Svc: &service.IdeaService{Repo: store}},
		RequireAuth:  jwtmiddleware.JWTMiddleware(issuer),
	})

	return &testEnv{t: t, e: e, repo: store}
}

func (env *testEnv) doJSON(method, path string, body any, bearer string) *httptest.ResponseRecorder {
	env.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if bearer != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (env *testEnv) signUp(username, email string) {
	env.t.Helper()
	rec := env.doJSON(http.MethodPost, "/auth/signup", map[string]any{
		"email": email, "username": username, "password": "secret1",
	}, "")
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (env *testEnv) signIn(username string) map[string]any {
	env.t.Helper()
	rec := env.doJSON(http.MethodPost, "/auth/signin", map[string]any{
		"username": username, "password": "secret1",
	}, "")
	require.Equal(env.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[map[string]any](env.t, rec)
}
