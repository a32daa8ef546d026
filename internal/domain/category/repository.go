package category

import (
	"context"

	"library-admin-backend/internal/query"
)

type Repository interface {
	Create(ctx context.Context, c *Category) error
	GetByID(ctx context.Context, id uint64) (*Category, error)
	List(ctx context.Context, req query.Request) (*query.Page[Category], error)
}
