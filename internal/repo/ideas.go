package repo

import (
	"context"
	"strings"

	"github.com/Skotchmaster/idea_board/internal/models"
	"github.com/google/uuid"
)

func (r *GormRepo) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	var items []models.Idea
	if err := r.DB.WithContext(ctx).Order("created ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateIdea(ctx context.Context, idea *models.Idea) error {
	idea.ID = uuid.NewString()
	return r.DB.WithContext(ctx).Create(idea).Error
}

func (r *GormRepo) GetIdea(ctx context.Context, id string) (*models.Idea, error) {
	var idea models.Idea
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&idea).Error; err != nil {
		return nil, notFound(err)
	}
	return &idea, nil
}

// UpdateIdea applies the non-nil fields to the stored idea.
func (r *GormRepo) UpdateIdea(ctx context.Context, id string, text, description *string) (*models.Idea, error) {
	idea, err := r.GetIdea(ctx, id)
	if err != nil {
		return nil, err
	}

	if text != nil {
		idea.Idea = *text
	}
	if description != nil {
		idea.Description = *description
	}

	if err := r.DB.WithContext(ctx).Save(idea).Error; err != nil {
		return nil, err
	}
	return idea, nil
}

func (r *GormRepo) DeleteIdea(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Idea{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SearchIdeas is the substring fallback used when no search index is configured.
func (r *GormRepo) SearchIdeas(ctx context.Context, q string, offset, limit int) (int64, []models.Idea, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"
	where := "LOWER(idea) LIKE ? OR LOWER(description) LIKE ?"

	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Idea{}).
		Where(where, pattern, pattern).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Idea, 0, limit)
	if err := r.DB.WithContext(ctx).
		Where(where, pattern, pattern).
		Order("created ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}
	return total, items, nil
}
