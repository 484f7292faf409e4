package transport

import (
	"time"

	"github.com/Skotchmaster/idea_board/internal/models"
)

type SignUpRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Username  string  `json:"username" validate:"required,username"`
	Password  string  `json:"password" validate:"required,min=6,max=20,nospace"`
	FirstName *string `json:"firstName" validate:"omitempty,max=64"`
	LastName  *string `json:"lastName" validate:"omitempty,max=64"`
}

// SignInRequest takes either a username or an email.
type SignInRequest struct {
	Username string `json:"username" validate:"required_without=Email"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required,min=6,max=20,nospace"`
}

func (r SignInRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type IdeaRequest struct {
	Idea        string `json:"idea" validate:"required,max=2000"`
	Description string `json:"description" validate:"max=10000"`
}

type IdeaPatchRequest struct {
	Idea        *string `json:"idea" validate:"omitempty,min=1,max=2000"`
	Description *string `json:"description" validate:"omitempty,max=10000"`
}

// UserResponse is the public profile. It never carries the password hash
// or tokens.
type UserResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName"`
	LastName  *string   `json:"lastName"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

type SignInResponse struct {
	UserResponse
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}

type IdeaResponse struct {
	ID          string    `json:"id"`
	Created     time.Time `json:"created"`
	Idea        string    `json:"idea"`
	Description string    `json:"description"`
}

func NewIdeaResponse(i *models.Idea) IdeaResponse {
	return IdeaResponse{
		ID:          i.ID,
		Created:     i.Created,
		Idea:        i.Idea,
		Description: i.Description,
	}
}

func NewIdeaResponses(ideas []models.Idea) []IdeaResponse {
	out := make([]IdeaResponse, 0, len(ideas))
	for i := range ideas {
		out = append(out, NewIdeaResponse(&ideas[i]))
	}
	return out
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}

type SearchResponse struct {
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Size  int            `json:"size"`
	Ideas []IdeaResponse `json:"ideas"`
}

type ErrorResponse struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Path      string            `json:"path"`
	Method    string            `json:"method"`
	Errors    map[string]string `json:"errors,omitempty"`
}
