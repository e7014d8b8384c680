package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "linkfolio/internal/errors"
	"linkfolio/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (*model.User, error)
	FindWithLinks(ctx context.Context, username string) (*model.UserWithLinks, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a user, translating the unique-username constraint to
// the domain taxonomy.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies only the supplied fields and returns the fresh
// row, or gorm.ErrRecordNotFound if no such user exists.
func (r *userRepository) UpdateProfile(ctx context.Context, id uint, fields map[string]interface{}) (*model.User, error) {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.User{}).
			Where("id = ?", id).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.FindByID(ctx, id)
}

// FindWithLinks returns the user and all their links ordered by display
// order ascending, id ascending on ties.
func (r *userRepository) FindWithLinks(ctx context.Context, username string) (*model.UserWithLinks, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	var links []model.UserLink
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", user.ID).
		Order("sort_order ASC, id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}

	return &model.UserWithLinks{User: user, Links: links}, nil
}
