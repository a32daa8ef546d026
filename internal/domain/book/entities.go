package book

import (
	"time"

	"gorm.io/gorm"
)

type Book struct {
	ID             uint64         `gorm:"primaryKey;column:id" json:"id"`
	Title          string         `gorm:"size:255;index" json:"title"`
	Author         string         `gorm:"size:255;index" json:"author"`
	ISBN           string         `gorm:"size:32;uniqueIndex:ux_books_isbn" json:"isbn"`
	CategoryID     uint64         `gorm:"index:idx_books_category" json:"category_id"`
	Stock          int            `json:"stock"`
	AvailableStock int            `json:"available_stock"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Book) TableName() string { return "books" }
