package service

import (
	"context"

	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	FindByRefreshToken(ctx context.Context, token string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetRefreshToken(ctx context.Context, userID, token string) error
	SwapRefreshToken(ctx context.Context, userID, oldToken, newToken string) (bool, error)
	ClearRefreshToken(ctx context.Context, userID string) error
}

type IdeaStore interface {
	ListIdeas(ctx context.Context) ([]models.Idea, error)
	CreateIdea(ctx context.Context, idea *models.Idea) error
	GetIdea(ctx context.Context, id string) (*models.Idea, error)
	UpdateIdea(ctx context.Context, id string, text, description *string) (*models.Idea, error)
	DeleteIdea(ctx context.Context, id string) error
	SearchIdeas(ctx context.Context, q string, offset, limit int) (int64, []models.Idea, error)
}

// IdeaIndex mirrors ideas into a full-text search engine.
type IdeaIndex interface {
	Put(ctx context.Context, idea models.Idea) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, q string, from, size int) (int64, []models.Idea, error)
}

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

const (
	TopicUserEvents = "user_events"
	TopicIdeaEvents = "idea_events"
)

func publish(ctx context.Context, p Publisher, topic, key string, event map[string]any) {
	if p == nil {
		return
	}
	if err := p.PublishEvent(ctx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "type", event["type"], "error", err)
	}
}
