package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "linkfolio/internal/errors"
	"linkfolio/internal/model"
)

func TestUserService_PublicProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	// Repository delivers links already ordered; one inactive link (order
	// 0) sits in front and must not leak into the public view.
	mockRepo.On("FindWithLinks", mock.Anything, "alice").Return(&model.UserWithLinks{
		User: model.User{ID: 1, Username: "alice"},
		Links: []model.UserLink{
			{ID: 4, UserID: 1, Title: "Hidden", Order: 0, Active: false},
			{ID: 2, UserID: 1, Title: "Blog", Order: 1, Active: true},
			{ID: 3, UserID: 1, Title: "Shop", Order: 2, Active: true},
			{ID: 1, UserID: 1, Title: "Site", Order: 3, Active: true},
		},
	}, nil)

	svc := NewUserService(mockRepo)
	profile, err := svc.PublicProfile(context.Background(), "alice")

	assert.NoError(t, err)
	assert.Len(t, profile.Links, 3)
	orders := []int{profile.Links[0].Order, profile.Links[1].Order, profile.Links[2].Order}
	assert.Equal(t, []int{1, 2, 3}, orders)
	for _, link := range profile.Links {
		assert.True(t, link.Active)
	}
}

func TestUserService_PublicProfile_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindWithLinks", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo)
	profile, err := svc.PublicProfile(context.Background(), "ghost")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Nil(t, profile)
}

func TestUserService_PublicProfile_NoLinks(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindWithLinks", mock.Anything, "bob").Return(&model.UserWithLinks{
		User: model.User{ID: 2, Username: "bob"},
	}, nil)

	svc := NewUserService(mockRepo)
	profile, err := svc.PublicProfile(context.Background(), "bob")

	assert.NoError(t, err)
	assert.NotNil(t, profile.Links)
	assert.Empty(t, profile.Links)
}

func TestUserService_UpdateProfile_FieldMapping(t *testing.T) {
	displayName := "Alice A."
	theme := "dark"

	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateProfile", mock.Anything, uint(1), map[string]interface{}{
		"display_name": "Alice A.",
		"theme":        "dark",
	}).Return(&model.User{ID: 1, Username: "alice", DisplayName: displayName, Theme: theme}, nil)

	svc := NewUserService(mockRepo)
	user, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdate{
		DisplayName: &displayName,
		Theme:       &theme,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Alice A.", user.DisplayName)
	assert.Equal(t, "dark", user.Theme)

	mockRepo.AssertExpectations(t)
}
