package model

import "time"

// UserLink is a single outbound link on a user's profile. The URL is
// stored byte-for-byte as given; normalization belongs to the client.
// ORDER is a reserved word in MySQL, so the column is sort_order while
// the JSON field keeps the wire name "order".
type UserLink struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	URL       string    `json:"url" gorm:"size:2048;not null"`
	Order     int       `json:"order" gorm:"column:sort_order;default:0;not null"`
	Active    bool      `json:"active" gorm:"default:true;not null"`
	CreatedAt time.Time `json:"created_at"`
}
