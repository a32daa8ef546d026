package mysql

import (
	"testing"
	"time"

	loanDomain "library-admin-backend/internal/domain/loan"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schemas only for tests (no ENUM) ---

type loanSQLite struct {
	ID         uint64     `gorm:"primaryKey;column:id"`
	LoanCode   string     `gorm:"size:16;column:loan_code;uniqueIndex"`
	MemberID   uint64     `gorm:"column:member_id"`
	BookID     uint64     `gorm:"column:book_id"`
	LoanDate   time.Time  `gorm:"column:loan_date"`
	DueDate    time.Time  `gorm:"column:due_date"`
	ReturnDate *time.Time `gorm:"column:return_date"`
	Status     string     `gorm:"type:text;column:status"` // ← no enum
	FineAmount int64      `gorm:"column:fine_amount"`
	Notes      string     `gorm:"column:notes"`
	CreatedBy  string     `gorm:"column:created_by"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type bookSQLite struct {
	ID             uint64         `gorm:"primaryKey;column:id"`
	Title          string         `gorm:"column:title"`
	Author         string         `gorm:"column:author"`
	ISBN           string         `gorm:"column:isbn"`
	CategoryID     uint64         `gorm:"column:category_id"`
	Stock          int            `gorm:"column:stock"`
	AvailableStock int            `gorm:"column:available_stock"`
	CreatedAt      time.Time      `gorm:"column:created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (bookSQLite) TableName() string { return "books" }

type memberSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	MemberCode  string         `gorm:"column:member_code"`
	FullName    string         `gorm:"column:full_name"`
	Email       string         `gorm:"column:email"`
	Phone       string         `gorm:"column:phone"`
	Status      string         `gorm:"type:text;column:status"`
	MemberSince time.Time      `gorm:"column:member_since"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

type categorySQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	Name        string         `gorm:"column:name"`
	Description string         `gorm:"column:description"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (categorySQLite) TableName() string { return "categories" }

type userSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	Username     string         `gorm:"column:username"`
	FullName     string         `gorm:"column:full_name"`
	Email        string         `gorm:"column:email"`
	Role         string         `gorm:"type:text;column:role"`
	PasswordHash string         `gorm:"column:password_hash"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (userSQLite) TableName() string { return "users" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schemas, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &bookSQLite{}, &memberSQLite{}, &categorySQLite{}, &userSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func utcDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedMember(t *testing.T, db *gorm.DB, id uint64, name, status string) {
	t.Helper()
	err := db.Create(&memberSQLite{
		ID: id, MemberCode: "MB-SEED", FullName: name, Email: name + "@example.com",
		Status: status, MemberSince: utcDate(2023, 1, 1),
	}).Error
	if err != nil {
		t.Fatalf("seed member: %v", err)
	}
}

func seedBook(t *testing.T, db *gorm.DB, id uint64, title string, stock, available int) {
	t.Helper()
	err := db.Create(&bookSQLite{
		ID: id, Title: title, Author: "Anonymous", ISBN: title, Stock: stock, AvailableStock: available,
	}).Error
	if err != nil {
		t.Fatalf("seed book: %v", err)
	}
}

func seedLoan(t *testing.T, db *gorm.DB, l loanSQLite) {
	t.Helper()
	if l.Status == "" {
		l.Status = string(loanDomain.StatusBorrowed)
	}
	if err := db.Create(&l).Error; err != nil {
		t.Fatalf("seed loan: %v", err)
	}
}
