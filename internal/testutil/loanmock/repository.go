package loanmock

import (
	"context"
	"time"

	domain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository. Fill in
// only the function fields a test needs; unfilled lookups report not-found.
type Repo struct {
	CreateFn              func(ctx context.Context, l *domain.Loan) error
	SaveFn                func(ctx context.Context, l *domain.Loan) error
	GetByCodeFn           func(ctx context.Context, code string) (*domain.Loan, error)
	GetByCodeForUpdateFn  func(ctx context.Context, code string) (*domain.Loan, error)
	CountOpenByMemberIDFn func(ctx context.Context, memberID uint64) (int64, error)
	ListFn                func(ctx context.Context, req query.Request) (*query.Page[domain.Loan], error)
	CountOverdueFn        func(ctx context.Context, asOf time.Time) (int64, error)
	ListOverdueFn         func(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
	SumFinesBetweenFn     func(ctx context.Context, from, to time.Time) (int64, error)
	MonthlyCountsFn       func(ctx context.Context, months int, asOf time.Time) ([]domain.MonthlyCount, error)
	TopBooksFn            func(ctx context.Context, limit int) ([]domain.BookCount, error)
	TopMembersFn          func(ctx context.Context, limit int) ([]domain.MemberCount, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByCode(ctx context.Context, code string) (*domain.Loan, error) {
	if m.GetByCodeFn != nil {
		return m.GetByCodeFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByCodeForUpdate(ctx context.Context, code string) (*domain.Loan, error) {
	if m.GetByCodeForUpdateFn != nil {
		return m.GetByCodeForUpdateFn(ctx, code)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) CountOpenByMemberID(ctx context.Context, memberID uint64) (int64, error) {
	if m.CountOpenByMemberIDFn != nil {
		return m.CountOpenByMemberIDFn(ctx, memberID)
	}
	return 0, nil
}

func (m *Repo) List(ctx context.Context, req query.Request) (*query.Page[domain.Loan], error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}
	return query.NewPage[domain.Loan](nil, 0, req.Page, req.PerPage), nil
}

func (m *Repo) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	if m.CountOverdueFn != nil {
		return m.CountOverdueFn(ctx, asOf)
	}
	return 0, nil
}

func (m *Repo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	if m.ListOverdueFn != nil {
		return m.ListOverdueFn(ctx, asOf)
	}
	return nil, nil
}

func (m *Repo) SumFinesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	if m.SumFinesBetweenFn != nil {
		return m.SumFinesBetweenFn(ctx, from, to)
	}
	return 0, nil
}

func (m *Repo) MonthlyCounts(ctx context.Context, months int, asOf time.Time) ([]domain.MonthlyCount, error) {
	if m.MonthlyCountsFn != nil {
		return m.MonthlyCountsFn(ctx, months, asOf)
	}
	return nil, nil
}

func (m *Repo) TopBooks(ctx context.Context, limit int) ([]domain.BookCount, error) {
	if m.TopBooksFn != nil {
		return m.TopBooksFn(ctx, limit)
	}
	return nil, nil
}

func (m *Repo) TopMembers(ctx context.Context, limit int) ([]domain.MemberCount, error) {
	if m.TopMembersFn != nil {
		return m.TopMembersFn(ctx, limit)
	}
	return nil, nil
}
