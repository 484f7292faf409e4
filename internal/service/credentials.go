package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Skotchmaster/idea_board/internal/hash"
	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/Skotchmaster/idea_board/internal/repo"
)

// dummyHash is compared against when the identifier is unknown so that a
// miss costs the same bcrypt work as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, _ := hash.HashPassword("dummy-password-for-timing")
	return h
})

type CredentialValidator struct {
	Users UserStore
}

// Validate authenticates identifier (username or email) and password.
// Unknown users and wrong passwords both return ErrInvalidCredentials.
func (v *CredentialValidator) Validate(ctx context.Context, identifier, password string) (*models.User, error) {
	user, err := v.Users.FindByLogin(ctx, identifier)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			hash.CheckPassword(dummyHash(), password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
