package mysql

import (
	"context"

	"library-admin-backend/internal/apperr"
	bookDomain "library-admin-backend/internal/domain/book"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

type BookRepository struct{ db *gorm.DB }

func NewBookRepository(db *gorm.DB) *BookRepository { return &BookRepository{db: db} }

var bookListSpec = Spec{
	SearchFields: []string{"title", "author", "isbn"},
	FilterFields: map[string]string{
		"category_id":     "category_id",
		"author":          "author",
		"stock":           "stock",
		"available_stock": "available_stock",
	},
	SortFields: map[string]string{
		"id":         "id",
		"title":      "title",
		"author":     "author",
		"created_at": "created_at",
	},
	DefaultSort: "title ASC",
}

func (r *BookRepository) Create(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepository) Save(ctx context.Context, b *bookDomain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookRepository) GetByID(ctx context.Context, id uint64) (*bookDomain.Book, error) {
	var out bookDomain.Book
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

// DecrementAvailable is the availability guard: the WHERE clause makes the
// decrement conditional, so two racing borrows of the last copy cannot both
// match a row.
func (r *BookRepository) DecrementAvailable(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("id = ? AND available_stock > 0", id).
		UpdateColumn("available_stock", gorm.Expr("available_stock - 1"))
	return res.RowsAffected > 0, res.Error
}

func (r *BookRepository) IncrementAvailable(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Model(&bookDomain.Book{}).
		Where("id = ? AND available_stock < stock", id).
		UpdateColumn("available_stock", gorm.Expr("available_stock + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Conflict("book %d availability already at full stock", id)
	}
	return nil
}

func (r *BookRepository) List(ctx context.Context, req query.Request) (*query.Page[bookDomain.Book], error) {
	return FindPage[bookDomain.Book](ctx, r.db, bookListSpec, req)
}
