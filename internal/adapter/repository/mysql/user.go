package mysql

import (
	"context"

	userDomain "library-admin-backend/internal/domain/user"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

var userListSpec = Spec{
	SearchFields: []string{"username", "full_name", "email"},
	FilterFields: map[string]string{"role": "role"},
	SortFields: map[string]string{
		"id":       "id",
		"username": "username",
	},
	DefaultSort: "username ASC",
}

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *UserRepository) List(ctx context.Context, req query.Request) (*query.Page[userDomain.User], error) {
	return FindPage[userDomain.User](ctx, r.db, userListSpec, req)
}
