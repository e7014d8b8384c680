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

// ProfileUpdate carries the mutable profile fields; nil means "leave
// unchanged". Username is immutable and deliberately absent.
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	Theme       *string
}

// UserService handles profile reads and updates.
type UserService interface {
	UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*model.User, error)
	PublicProfile(ctx context.Context, username string) (*model.UserWithLinks, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// UpdateProfile applies only displayName, bio and theme.
func (s *userService) UpdateProfile(ctx context.Context, id uint, in ProfileUpdate) (*model.User, error) {
	fields := map[string]interface{}{}
	if in.DisplayName != nil {
		fields["display_name"] = *in.DisplayName
	}
	if in.Bio != nil {
		fields["bio"] = *in.Bio
	}
	if in.Theme != nil {
		fields["theme"] = *in.Theme
	}

	user, err := s.userRepo.UpdateProfile(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

// PublicProfile returns the user and their active links in display
// order. Inactive links never appear on the public view.
func (s *userService) PublicProfile(ctx context.Context, username string) (*model.UserWithLinks, error) {
	profile, err := s.userRepo.FindWithLinks(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	active := make([]model.UserLink, 0, len(profile.Links))
	for _, link := range profile.Links {
		if link.Active {
			active = append(active, link)
		}
	}
	profile.Links = active

	return profile, nil
}
