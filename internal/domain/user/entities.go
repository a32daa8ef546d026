package user

import (
	"time"

	"gorm.io/gorm"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
)

// User is a staff account. Authentication itself lives outside this service;
// the entity exists for the admin user listing and mutation attribution.
type User struct {
	ID           uint64         `gorm:"primaryKey;column:id" json:"id"`
	Username     string         `gorm:"size:64;uniqueIndex:ux_users_username" json:"username"`
	FullName     string         `gorm:"size:255" json:"full_name"`
	Email        string         `gorm:"size:255" json:"email"`
	Role         Role           `gorm:"type:enum('admin','librarian');default:'librarian'" json:"role"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }
