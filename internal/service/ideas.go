package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Skotchmaster/idea_board/internal/logging"
	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/Skotchmaster/idea_board/internal/repo"
)

type IdeaService struct {
	Repo   IdeaStore
	Index  IdeaIndex
	Events Publisher
}

func (s *IdeaService) ShowAll(ctx context.Context) ([]models.Idea, error) {
	return s.Repo.ListIdeas(ctx)
}

func (s *IdeaService) Create(ctx context.Context, text, description string) (*models.Idea, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation
	}

	idea := models.Idea{Idea: text, Description: description}
	if err := s.Repo.CreateIdea(ctx, &idea); err != nil {
		return nil, err
	}

	s.index(ctx, idea)
	publish(ctx, s.Events, TopicIdeaEvents, idea.ID, map[string]any{
		"type":    "idea_created",
		"idea_id": idea.ID,
	})
	return &idea, nil
}

func (s *IdeaService) Read(ctx context.Context, id string) (*models.Idea, error) {
	idea, err := s.Repo.GetIdea(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	return idea, nil
}

func (s *IdeaService) Update(ctx context.Context, id string, text, description *string) (*models.Idea, error) {
	if text != nil && strings.TrimSpace(*text) == "" {
		return nil, ErrValidation
	}

	idea, err := s.Repo.UpdateIdea(ctx, id, text, description)
	if err != nil {
		return nil, mapNotFound(err)
	}

	s.index(ctx, *idea)
	publish(ctx, s.Events, TopicIdeaEvents, idea.ID, map[string]any{
		"type":    "idea_updated",
		"idea_id": idea.ID,
	})
	return idea, nil
}

func (s *IdeaService) Destroy(ctx context.Context, id string) error {
	if err := s.Repo.DeleteIdea(ctx, id); err != nil {
		return mapNotFound(err)
	}

	if s.Index != nil {
		if err := s.Index.Remove(ctx, id); err != nil {
			logging.FromContext(ctx).Error("search index remove error", "idea_id", id, "error", err)
		}
	}
	publish(ctx, s.Events, TopicIdeaEvents, id, map[string]any{
		"type":    "idea_deleted",
		"idea_id": id,
	})
	return nil
}

// Search queries the search index, or the database when no index is set.
func (s *IdeaService) Search(ctx context.Context, q string, from, size int) (int64, []models.Idea, error) {
	if strings.TrimSpace(q) == "" {
		return 0, nil, ErrValidation
	}
	if s.Index != nil {
		return s.Index.Search(ctx, q, from, size)
	}
	return s.Repo.SearchIdeas(ctx, q, from, size)
}

func (s *IdeaService) index(ctx context.Context, idea models.Idea) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Put(ctx, idea); err != nil {
		logging.FromContext(ctx).Error("search index put error", "idea_id", idea.ID, "error", err)
	}
}

func mapNotFound(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
