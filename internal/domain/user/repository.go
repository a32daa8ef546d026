package user

import (
	"context"

	"library-admin-backend/internal/query"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint64) (*User, error)
	List(ctx context.Context, req query.Request) (*query.Page[User], error)
}
