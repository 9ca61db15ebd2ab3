package models

import "time"

// Post represents a blog post with comments.
type Post struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Comments  []Comment `gorm:"foreignkey:PostID" json:"-"`
}

// Comment represents a comment on a blog post. The parent post id never
// appears on the wire: a comment is only addressable through its post's path.
type Comment struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"size:100;not null" json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// AdminUser is the administrative account created by the seed command.
// It is never exposed over the HTTP API.
type AdminUser struct {
	ID           uint   `gorm:"primary_key"`
	Username     string `gorm:"size:150;unique;not null"`
	Email        string `gorm:"size:254"`
	PasswordHash string `gorm:"size:128"`
	CreatedAt    time.Time
}
