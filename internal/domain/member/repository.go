package member

import (
	"context"

	"library-admin-backend/internal/query"
)

type Repository interface {
	Create(ctx context.Context, m *Member) error
	Save(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, id uint64) (*Member, error)
	List(ctx context.Context, req query.Request) (*query.Page[Member], error)
}
