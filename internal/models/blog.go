package models

import (
	"time"
)

type Blog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `gorm:"type:text" json:"description"` // markdown source
	Category    string    `gorm:"not null" json:"category"`
	Thumbnail   string    `json:"thumbnail"`
	IsPublished bool      `gorm:"default:false;index" json:"is_published"`
	Likes       []Like    `gorm:"foreignKey:BlogID" json:"-"`
	Comments    []Comment `gorm:"foreignKey:BlogID" json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Like is one row of a blog's likes set. The composite unique index gives
// set semantics at the store level: inserting an existing (blog, user) pair
// conflicts instead of duplicating.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"not null;index;uniqueIndex:idx_blog_user_like" json:"blog_id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_blog_user_like" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// BlogView is a blog read projection: author and commenters reduced to
// display fields, likes flattened to user ids, description rendered to
// sanitized HTML for the client.
type BlogView struct {
	ID              uint          `json:"id"`
	Title           string        `json:"title"`
	Subtitle        string        `json:"subtitle"`
	Description     string        `json:"description"`
	DescriptionHTML string        `json:"description_html"`
	Category        string        `json:"category"`
	Thumbnail       string        `json:"thumbnail"`
	IsPublished     bool          `json:"is_published"`
	Author          Author        `json:"author"`
	Likes           []uint        `json:"likes"`
	Comments        []CommentView `json:"comments"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// LikeStats is the per-author aggregate over all of their blogs.
type LikeStats struct {
	TotalBlogs int `json:"totalBlogs"`
	TotalLikes int `json:"totalLikes"`
}
