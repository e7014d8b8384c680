package model

// Category is static reference data for grouping content.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:255;not null"`
}
