package model

import "time"

// User is an account holder with a public link-in-bio profile.
// Username is immutable after creation and unique at the store.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	DisplayName  string    `json:"displayName,omitempty" gorm:"size:255"`
	Bio          string    `json:"bio,omitempty" gorm:"size:1024"`
	AvatarURL    string    `json:"avatarUrl,omitempty" gorm:"size:512"`
	Theme        string    `json:"theme" gorm:"size:50;default:'default'"`
	CreatedAt    time.Time `json:"created_at"`

	// Relation declared for the foreign key; serialized only through
	// UserWithLinks so private reads never drag links along.
	Links []UserLink `json:"-" gorm:"foreignKey:UserID"`
}

// UserWithLinks is the denormalized joined read backing the public
// profile: the user plus their links in display order. Links is always
// present in JSON, even when empty.
type UserWithLinks struct {
	User
	Links []UserLink `json:"links"`
}
