package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"linkfolio/internal/cache"
	apperrors "linkfolio/internal/errors"
	"linkfolio/internal/model"
	"linkfolio/internal/repository"
)

const contentCacheTTL = 5 * time.Minute

const (
	cacheKeyAll      = "contents:all"
	cacheKeyFeatured = "contents:featured"
	cacheKeyLatest   = "contents:latest"
)

// ContentService handles content reads with cache-aside Redis caching;
// the database stays the source of truth and cache faults degrade to
// plain reads.
type ContentService interface {
	ListAll(ctx context.Context) ([]model.Content, error)
	Get(ctx context.Context, id uint) (*model.Content, error)
	ListByCategory(ctx context.Context, slug string) ([]model.Content, error)
	ListFeatured(ctx context.Context) ([]model.Content, error)
	ListLatest(ctx context.Context) ([]model.Content, error)
	Create(ctx context.Context, content *model.Content) (*model.Content, error)
}

type contentService struct {
	contentRepo repository.ContentRepository
	cache       *cache.Client
}

// NewContentService creates a new content service.
func NewContentService(contentRepo repository.ContentRepository, cache *cache.Client) ContentService {
	return &contentService{
		contentRepo: contentRepo,
		cache:       cache,
	}
}

func (s *contentService) listCached(ctx context.Context, key string, fetch func(context.Context) ([]model.Content, error)) ([]model.Content, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached []model.Content
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	contents, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if contents == nil {
		contents = []model.Content{}
	}

	if payload, err := json.Marshal(contents); err == nil {
		_ = s.cache.Set(ctx, key, payload, contentCacheTTL)
	}
	return contents, nil
}

func (s *contentService) ListAll(ctx context.Context) ([]model.Content, error) {
	return s.listCached(ctx, cacheKeyAll, s.contentRepo.ListAll)
}

func (s *contentService) Get(ctx context.Context, id uint) (*model.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get content: %w", err)
	}
	return content, nil
}

func (s *contentService) ListByCategory(ctx context.Context, slug string) ([]model.Content, error) {
	key := "contents:category:" + slug
	return s.listCached(ctx, key, func(ctx context.Context) ([]model.Content, error) {
		return s.contentRepo.ListByCategory(ctx, slug)
	})
}

func (s *contentService) ListFeatured(ctx context.Context) ([]model.Content, error) {
	return s.listCached(ctx, cacheKeyFeatured, s.contentRepo.ListFeatured)
}

func (s *contentService) ListLatest(ctx context.Context) ([]model.Content, error) {
	return s.listCached(ctx, cacheKeyLatest, s.contentRepo.ListLatest)
}

// Create inserts content and invalidates the list caches so readers see
// it within one request rather than one TTL.
func (s *contentService) Create(ctx context.Context, content *model.Content) (*model.Content, error) {
	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}

	_ = s.cache.Delete(ctx, cacheKeyAll)
	_ = s.cache.Delete(ctx, cacheKeyFeatured)
	_ = s.cache.Delete(ctx, cacheKeyLatest)

	return content, nil
}
