package models

import (
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"  json:"id"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null"      json:"created_at"`
	Username     string    `gorm:"uniqueIndex;not null"         json:"username"`
	Email        string    `gorm:"uniqueIndex;not null"         json:"email"`
	PasswordHash string    `gorm:"not null"                     json:"-"`
	FirstName    *string   `json:"firstName"`
	LastName     *string   `json:"lastName"`
	Role         int       `gorm:"not null"                     json:"role"`
	IsActivated  bool      `gorm:"not null"                     json:"is_activated"`
	IsBanned     bool      `gorm:"not null"                     json:"is_banned"`
	RefreshToken *string   `gorm:"index"                        json:"-"`
}

type Idea struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Created     time.Time `gorm:"autoCreateTime;not null"     json:"created"`
	Idea        string    `gorm:"type:text;not null"          json:"idea"`
	Description string    `gorm:"not null"                    json:"description"`
}
