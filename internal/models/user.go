package models

import (
	"time"
)

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"not null" json:"first_name"`
	LastName   string    `gorm:"not null" json:"last_name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	Occupation string    `gorm:"size:100" json:"occupation"`
	Bio        string    `gorm:"size:200" json:"bio"`
	Instagram  string    `json:"instagram"`
	Facebook   string    `json:"facebook"`
	LinkedIn   string    `json:"linkedin"`
	GitHub     string    `json:"github"`
	PhotoURL   string    `json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	// No DeletedAt: accounts are never removed by any exposed operation
}

// PublicUser is the sanitized projection returned by the API. It has no
// credential field at all, so a future column on User cannot leak by omission.
type PublicUser struct {
	ID         uint      `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email"`
	Occupation string    `json:"occupation"`
	Bio        string    `json:"bio"`
	Instagram  string    `json:"instagram"`
	Facebook   string    `json:"facebook"`
	LinkedIn   string    `json:"linkedin"`
	GitHub     string    `json:"github"`
	PhotoURL   string    `json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Author carries the display fields joined into blog and comment reads.
type Author struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Occupation: u.Occupation,
		Bio:        u.Bio,
		Instagram:  u.Instagram,
		Facebook:   u.Facebook,
		LinkedIn:   u.LinkedIn,
		GitHub:     u.GitHub,
		PhotoURL:   u.PhotoURL,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

func (u *User) Display() Author {
	return Author{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		PhotoURL:  u.PhotoURL,
	}
}
