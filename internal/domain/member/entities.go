package member

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

type Member struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"id"`
	MemberCode  string         `gorm:"size:16;uniqueIndex:ux_members_code" json:"member_code"`
	FullName    string         `gorm:"size:255;index" json:"full_name"`
	Email       string         `gorm:"size:255" json:"email"`
	Phone       string         `gorm:"size:32" json:"phone"`
	Status      Status         `gorm:"type:enum('active','inactive','suspended');default:'active';index" json:"status"`
	MemberSince time.Time      `gorm:"type:date" json:"member_since"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

// CanBorrow reports whether the member may start a new loan given how many
// loans they currently have open and the configured concurrent-loan limit.
func (m *Member) CanBorrow(openLoans int64, limit int) bool {
	return m.Status == StatusActive && openLoans < int64(limit)
}
