package mysql

import (
	"context"

	categoryDomain "library-admin-backend/internal/domain/category"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

type CategoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{db: db} }

var categoryListSpec = Spec{
	SearchFields: []string{"name", "description"},
	FilterFields: map[string]string{"name": "name"},
	SortFields: map[string]string{
		"id":   "id",
		"name": "name",
	},
	DefaultSort: "name ASC",
}

func (r *CategoryRepository) Create(ctx context.Context, c *categoryDomain.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*categoryDomain.Category, error) {
	var out categoryDomain.Category
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *CategoryRepository) List(ctx context.Context, req query.Request) (*query.Page[categoryDomain.Category], error) {
	return FindPage[categoryDomain.Category](ctx, r.db, categoryListSpec, req)
}
