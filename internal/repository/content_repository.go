package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"linkfolio/internal/model"
)

// latestLimit caps the "latest" feed.
const latestLimit = 8

// ContentRepository defines content persistence operations. Every read
// joins the owning category at the store, so callers never see a
// content row with a missing relation.
type ContentRepository interface {
	ListAll(ctx context.Context) ([]model.Content, error)
	FindByID(ctx context.Context, id uint) (*model.Content, error)
	ListByCategory(ctx context.Context, slug string) ([]model.Content, error)
	ListFeatured(ctx context.Context) ([]model.Content, error)
	ListLatest(ctx context.Context) ([]model.Content, error)
	Create(ctx context.Context, content *model.Content) error
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository builds a GORM-backed repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) ListAll(ctx context.Context) ([]model.Content, error) {
	var contents []model.Content
	if err := r.db.WithContext(ctx).
		Joins("Category").
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) FindByID(ctx context.Context, id uint) (*model.Content, error) {
	var content model.Content
	if err := r.db.WithContext(ctx).
		Joins("Category").
		First(&content, "contents.id = ?", id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// ListByCategory returns contents under the category identified by
// slug. An unknown slug yields an empty slice, not an error.
func (r *contentRepository) ListByCategory(ctx context.Context, slug string) ([]model.Content, error) {
	var category model.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []model.Content{}, nil
	}
	if err != nil {
		return nil, err
	}

	var contents []model.Content
	if err := r.db.WithContext(ctx).
		Joins("Category").
		Where("contents.category_id = ?", category.ID).
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) ListFeatured(ctx context.Context) ([]model.Content, error) {
	var contents []model.Content
	if err := r.db.WithContext(ctx).
		Joins("Category").
		Where("contents.featured = ?", true).
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) ListLatest(ctx context.Context) ([]model.Content, error) {
	var contents []model.Content
	if err := r.db.WithContext(ctx).
		Joins("Category").
		Order("contents.created_at DESC").
		Limit(latestLimit).
		Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *contentRepository) Create(ctx context.Context, content *model.Content) error {
	return r.db.WithContext(ctx).Create(content).Error
}
