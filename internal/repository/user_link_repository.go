package repository

import (
	"context"

	"gorm.io/gorm"

	"linkfolio/internal/model"
)

// UserLinkRepository defines link persistence operations. Mutations take
// the owning user id and filter on both columns, so a foreign link and a
// missing link are indistinguishable to the caller.
type UserLinkRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.UserLink, error)
	Create(ctx context.Context, link *model.UserLink) error
	Update(ctx context.Context, id, userID uint, fields map[string]interface{}) (*model.UserLink, error)
	Delete(ctx context.Context, id, userID uint) (bool, error)
}

type userLinkRepository struct {
	db *gorm.DB
}

// NewUserLinkRepository builds a GORM-backed repository.
func NewUserLinkRepository(db *gorm.DB) UserLinkRepository {
	return &userLinkRepository{db: db}
}

func (r *userLinkRepository) ListByUser(ctx context.Context, userID uint) ([]model.UserLink, error) {
	var links []model.UserLink
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sort_order ASC, id ASC").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// Create inserts a link. Columns are selected explicitly so zero values
// (order 0, active false) are written as given instead of falling back
// to column defaults.
func (r *userLinkRepository) Create(ctx context.Context, link *model.UserLink) error {
	return r.db.WithContext(ctx).
		Select("UserID", "Title", "URL", "Order", "Active", "CreatedAt").
		Create(link).Error
}

// Update applies only the supplied fields to the caller's own link and
// returns the fresh row, or gorm.ErrRecordNotFound when the id does not
// exist under that owner.
func (r *userLinkRepository) Update(ctx context.Context, id, userID uint, fields map[string]interface{}) (*model.UserLink, error) {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&model.UserLink{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	var link model.UserLink
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

// Delete removes the caller's own link, reporting whether a row existed.
// Repeated deletes return false, never an error.
func (r *userLinkRepository) Delete(ctx context.Context, id, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.UserLink{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
