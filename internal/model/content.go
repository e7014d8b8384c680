package model

import "time"

// Content is an article/media entry belonging to a category.
type Content struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description,omitempty" gorm:"size:2048"`
	ImageURL    string    `json:"imageUrl" gorm:"size:512;not null"`
	CategoryID  uint      `json:"categoryId" gorm:"index;not null"`
	ReadTime    int       `json:"readTime,omitempty"`
	Views       int       `json:"views" gorm:"default:0;not null"`
	Likes       int       `json:"likes" gorm:"default:0;not null"`
	Featured    bool      `json:"featured" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}
