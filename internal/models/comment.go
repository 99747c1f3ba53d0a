package models

import (
	"time"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView joins the commenter's display fields into a comment read.
type CommentView struct {
	ID        uint      `json:"id"`
	BlogID    uint      `json:"blog_id"`
	Content   string    `json:"content"`
	User      Author    `json:"user"`
	CreatedAt time.Time `json:"created_at"`
}
