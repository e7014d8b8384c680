package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "linkfolio/internal/errors"
	"linkfolio/internal/model"
	"linkfolio/internal/repository"
)

// LinkUpdate carries the optional fields of a partial link update; nil
// means "leave unchanged".
type LinkUpdate struct {
	Title  *string
	URL    *string
	Order  *int
	Active *bool
}

// LinkService handles a user's own links. Every mutation is scoped to
// the owning user id supplied by the caller's session, never by the
// request body.
type LinkService interface {
	List(ctx context.Context, userID uint) ([]model.UserLink, error)
	Create(ctx context.Context, userID uint, title, url string, order int, active bool) (*model.UserLink, error)
	Update(ctx context.Context, id, userID uint, in LinkUpdate) (*model.UserLink, error)
	Delete(ctx context.Context, id, userID uint) (bool, error)
}

type linkService struct {
	linkRepo repository.UserLinkRepository
}

// NewLinkService creates a new link service.
func NewLinkService(linkRepo repository.UserLinkRepository) LinkService {
	return &linkService{linkRepo: linkRepo}
}

func (s *linkService) List(ctx context.Context, userID uint) ([]model.UserLink, error) {
	links, err := s.linkRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if links == nil {
		links = []model.UserLink{}
	}
	return links, nil
}

// Create stores the URL byte-for-byte as given; any normalization is a
// client concern.
func (s *linkService) Create(ctx context.Context, userID uint, title, url string, order int, active bool) (*model.UserLink, error) {
	link := &model.UserLink{
		UserID: userID,
		Title:  title,
		URL:    url,
		Order:  order,
		Active: active,
	}
	if err := s.linkRepo.Create(ctx, link); err != nil {
		return nil, fmt.Errorf("create link: %w", err)
	}
	return link, nil
}

// Update applies only the supplied fields. A link that does not exist
// under this owner — whether missing or owned by someone else — yields
// the same ErrNotFound.
func (s *linkService) Update(ctx context.Context, id, userID uint, in LinkUpdate) (*model.UserLink, error) {
	fields := map[string]interface{}{}
	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.URL != nil {
		fields["url"] = *in.URL
	}
	if in.Order != nil {
		fields["sort_order"] = *in.Order
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}

	link, err := s.linkRepo.Update(ctx, id, userID, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update link: %w", err)
	}
	return link, nil
}

// Delete reports whether a row was removed; deleting an already-deleted
// id returns false, never an error.
func (s *linkService) Delete(ctx context.Context, id, userID uint) (bool, error) {
	removed, err := s.linkRepo.Delete(ctx, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete link: %w", err)
	}
	return removed, nil
}
