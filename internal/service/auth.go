package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/idea_board/internal/hash"
	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/Skotchmaster/idea_board/internal/repo"
)

type AuthService struct {
	Users       UserStore
	Credentials *CredentialValidator
	Sessions    *SessionManager
	Events      Publisher
}

func NewAuthService(users UserStore, sessions *SessionManager, events Publisher) *AuthService {
	return &AuthService{
		Users:       users,
		Credentials: &CredentialValidator{Users: users},
		Sessions:    sessions,
		Events:      events,
	}
}

type SignUpInput struct {
	Email     string
	Username  string
	Password  string
	FirstName *string
	LastName  *string
}

type SignInResult struct {
	User   *models.User
	Tokens TokenPair
}

func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup", "username", in.Username)

	if strings.TrimSpace(in.Username) == "" || strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return nil, ErrValidation
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("signup_error", "status", 500, "reason", "cannot hash the password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: pwHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         0,
		IsActivated:  true,
		IsBanned:     false,
	}

	if err := s.Users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExist) {
			l.Warn("signup_error", "status", 400, "reason", "user already exist")
			return nil, ErrAlreadyExists
		}
		l.Error("signup_error", "status", 500, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	publish(ctx, s.Events, TopicUserEvents, user.ID, map[string]any{
		"type":     "user_signed_up",
		"user_id":  user.ID,
		"username": user.Username,
	})
	l.Info("signup_successful", "user_id", user.ID)

	return &user, nil
}

// SignIn authenticates by username or email and issues a new token pair,
// replacing the user's previous refresh token.
func (s *AuthService) SignIn(ctx context.Context, identifier, password string) (*SignInResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signin")

	if strings.TrimSpace(identifier) == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Credentials.Validate(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			l.Warn("signin_failed", "status", 401, "reason", "invalid credentials")
		} else {
			l.Error("signin_failed", "status", 500, "error", err)
		}
		return nil, err
	}

	if user.IsBanned {
		l.Warn("signin_failed", "status", 400, "reason", "banned", "user_id", user.ID)
		return nil, ErrBanned
	}
	if !user.IsActivated {
		l.Warn("signin_failed", "status", 400, "reason", "inactive", "user_id", user.ID)
		return nil, ErrInactive
	}

	pair, err := s.Sessions.Issue(ctx, user)
	if err != nil {
		l.Error("signin_failed", "status", 500, "error", err)
		return nil, err
	}

	publish(ctx, s.Events, TopicUserEvents, user.ID, map[string]any{
		"type":     "user_signed_in",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return &SignInResult{User: user, Tokens: pair}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*SignInResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrValidation
	}

	user, pair, err := s.Sessions.Rotate(ctx, refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			l.Warn("refresh_failed", "status", 404, "reason", "refresh token not found")
		case errors.Is(err, ErrUnauthenticated):
			l.Warn("refresh_failed", "status", 401, "reason", "refresh token expired or invalid")
		default:
			l.Error("refresh_failed", "status", 500, "error", err)
		}
		return nil, err
	}

	return &SignInResult{User: user, Tokens: pair}, nil
}

func (s *AuthService) LogOut(ctx context.Context, userID string) error {
	l := logging.FromContext(ctx).With("svc", "auth.logout", "user_id", userID)

	if userID == "" {
		return ErrNotFound
	}

	if err := s.Sessions.Invalidate(ctx, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			l.Warn("logout_failed", "status", 404, "reason", "user not found")
		} else {
			l.Error("logout_failed", "status", 500, "reason", "cannot revoke refresh token", "error", err)
		}
		return err
	}

	publish(ctx, s.Events, TopicUserEvents, userID, map[string]any{
		"type":    "user_logged_out",
		"user_id": userID,
	})
	return nil
}
