package service

import (
	"context"
	"errors"

	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/Skotchmaster/idea_board/internal/repo"
)

type UsersService struct {
	Users UserStore
}

func (s *UsersService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.Users.ListUsers(ctx)
}

// GetUser looks a user up by username or email.
func (s *UsersService) GetUser(ctx context.Context, usernameOrEmail string) (*models.User, error) {
	user, err := s.Users.FindByLogin(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
