package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/Skotchmaster/idea_board/internal/repo"
	"github.com/Skotchmaster/idea_board/internal/tokens"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	AccessExp    time.Time
	RefreshExp   time.Time
}

// SessionManager owns the single refresh token stored on each user row.
type SessionManager struct {
	Users  UserStore
	Tokens *tokens.Issuer
}

func (s *SessionManager) mint(user *models.User) (TokenPair, error) {
	access, accessExp, err := s.Tokens.IssueAccessToken(user.ID, user.Username)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, refreshExp, err := s.Tokens.IssueRefreshToken(user.ID, user.Username)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		AccessExp:    accessExp,
		RefreshExp:   refreshExp,
	}, nil
}

// Issue mints a new pair and stores its refresh token, replacing any
// previous one.
func (s *SessionManager) Issue(ctx context.Context, user *models.User) (TokenPair, error) {
	pair, err := s.mint(user)
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.Users.SetRefreshToken(ctx, user.ID, pair.RefreshToken); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return TokenPair{}, ErrNotFound
		}
		return TokenPair{}, fmt.Errorf("store refresh token: %w", err)
	}
	return pair, nil
}

// Rotate consumes oldToken and returns its owner with a fresh pair. A token
// that is not currently stored, including one already rotated away, is
// ErrNotFound. Concurrent rotations of one token race on a conditional
// update, so exactly one of them wins.
func (s *SessionManager) Rotate(ctx context.Context, oldToken string) (*models.User, TokenPair, error) {
	user, err := s.Users.FindByRefreshToken(ctx, oldToken)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, TokenPair{}, ErrNotFound
		}
		return nil, TokenPair{}, fmt.Errorf("find refresh token: %w", err)
	}

	if _, err := s.Tokens.VerifyRefreshToken(oldToken); err != nil {
		return nil, TokenPair{}, ErrUnauthenticated
	}

	pair, err := s.mint(user)
	if err != nil {
		return nil, TokenPair{}, err
	}

	swapped, err := s.Users.SwapRefreshToken(ctx, user.ID, oldToken, pair.RefreshToken)
	if err != nil {
		return nil, TokenPair{}, fmt.Errorf("swap refresh token: %w", err)
	}
	if !swapped {
		return nil, TokenPair{}, ErrNotFound
	}

	token := pair.RefreshToken
	user.RefreshToken = &token
	return user, pair, nil
}

func (s *SessionManager) Invalidate(ctx context.Context, userID string) error {
	if err := s.Users.ClearRefreshToken(ctx, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("clear refresh token: %w", err)
	}
	return nil
}
