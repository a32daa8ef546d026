package bookmock

import (
	"context"

	domain "library-admin-backend/internal/domain/book"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, b *domain.Book) error
	SaveFn               func(ctx context.Context, b *domain.Book) error
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Book, error)
	DecrementAvailableFn func(ctx context.Context, id uint64) (bool, error)
	IncrementAvailableFn func(ctx context.Context, id uint64) error
	ListFn               func(ctx context.Context, req query.Request) (*query.Page[domain.Book], error)
}

func (m *Repo) Create(ctx context.Context, b *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, b *domain.Book) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, b)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) DecrementAvailable(ctx context.Context, id uint64) (bool, error) {
	if m.DecrementAvailableFn != nil {
		return m.DecrementAvailableFn(ctx, id)
	}
	return true, nil
}

func (m *Repo) IncrementAvailable(ctx context.Context, id uint64) error {
	if m.IncrementAvailableFn != nil {
		return m.IncrementAvailableFn(ctx, id)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, req query.Request) (*query.Page[domain.Book], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}
	return query.NewPage[domain.Book](nil, 0, req.Page, req.PerPage), nil
}
