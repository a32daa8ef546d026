package book

import (
	"context"

	"library-admin-backend/internal/query"
)

type Repository interface {
	Create(ctx context.Context, b *Book) error
	Save(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id uint64) (*Book, error)
	// DecrementAvailable atomically takes one copy off the shelf. It reports
	// false when available_stock was already zero (the conditional update
	// matched no row).
	DecrementAvailable(ctx context.Context, id uint64) (bool, error)
	IncrementAvailable(ctx context.Context, id uint64) error
	List(ctx context.Context, req query.Request) (*query.Page[Book], error)
}
