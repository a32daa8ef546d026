package membermock

import (
	"context"

	domain "library-admin-backend/internal/domain/member"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn  func(ctx context.Context, m *domain.Member) error
	SaveFn    func(ctx context.Context, m *domain.Member) error
	GetByIDFn func(ctx context.Context, id uint64) (*domain.Member, error)
	ListFn    func(ctx context.Context, req query.Request) (*query.Page[domain.Member], error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Member) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, e *domain.Member) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Member, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) List(ctx context.Context, req query.Request) (*query.Page[domain.Member], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}
	return query.NewPage[domain.Member](nil, 0, req.Page, req.PerPage), nil
}
