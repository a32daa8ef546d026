// Package listing fronts every admin list view with one entity-agnostic
// pagination contract; per-entity specialization is limited to which fields
// are searchable, filterable and sortable (enforced in the repositories).
package listing

import (
	"context"
	"time"

	"library-admin-backend/internal/apperr"
	"library-admin-backend/internal/domain/book"
	"library-admin-backend/internal/domain/category"
	loandomain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/domain/member"
	"library-admin-backend/internal/domain/user"
	"library-admin-backend/internal/query"
)

type Kind string

const (
	KindBooks      Kind = "books"
	KindMembers    Kind = "members"
	KindLoans      Kind = "loans"
	KindCategories Kind = "categories"
	KindUsers      Kind = "users"
)

type Usecase struct {
	books      book.Repository
	members    member.Repository
	loans      loandomain.Repository
	categories category.Repository
	users      user.Repository
	maxPerPage int
	now        func() time.Time
}

func NewUsecase(
	books book.Repository,
	members member.Repository,
	loans loandomain.Repository,
	categories category.Repository,
	users user.Repository,
	maxPerPage int,
	now func() time.Time,
) *Usecase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Usecase{
		books:      books,
		members:    members,
		loans:      loans,
		categories: categories,
		users:      users,
		maxPerPage: maxPerPage,
		now:        now,
	}
}

// loanListItem overrides the stored status with the derived one so list
// views show "overdue" without it ever being persisted.
type loanListItem struct {
	loandomain.Loan
	Status loandomain.Status `json:"status"`
}

// Paginate runs one page of the requested listing. PerPage must be positive
// and is clamped to the configured maximum; Page is clamped into range.
func (u *Usecase) Paginate(ctx context.Context, kind Kind, req query.Request) (*query.Page[any], error) {
	if req.PerPage <= 0 {
		return nil, apperr.InvalidInput("per_page must be positive, got %d", req.PerPage)
	}
	req.PerPage = query.ClampPerPage(req.PerPage, req.PerPage, u.maxPerPage)
	if req.Page < 1 {
		req.Page = 1
	}

	switch kind {
	case KindBooks:
		p, err := u.books.List(ctx, req)
		if err != nil {
			return nil, err
		}
		return anyPage(p), nil
	case KindMembers:
		p, err := u.members.List(ctx, req)
		if err != nil {
			return nil, err
		}
		return anyPage(p), nil
	case KindLoans:
		p, err := u.loans.List(ctx, req)
		if err != nil {
			return nil, err
		}
		asOf := u.now()
		items := make([]loanListItem, len(p.Records))
		for i := range p.Records {
			items[i] = loanListItem{Loan: p.Records[i], Status: p.Records[i].EffectiveStatus(asOf)}
		}
		return anyPage(query.NewPage(items, p.TotalRecords, p.CurrentPage, p.PerPage)), nil
	case KindCategories:
		p, err := u.categories.List(ctx, req)
		if err != nil {
			return nil, err
		}
		return anyPage(p), nil
	case KindUsers:
		p, err := u.users.List(ctx, req)
		if err != nil {
			return nil, err
		}
		return anyPage(p), nil
	default:
		return nil, apperr.InvalidInput("unknown entity kind %q", kind)
	}
}

func anyPage[T any](p *query.Page[T]) *query.Page[any] {
	records := make([]any, len(p.Records))
	for i := range p.Records {
		records[i] = p.Records[i]
	}
	return &query.Page[any]{
		Records:      records,
		TotalRecords: p.TotalRecords,
		CurrentPage:  p.CurrentPage,
		TotalPages:   p.TotalPages,
		PerPage:      p.PerPage,
		HasPrev:      p.HasPrev,
		HasNext:      p.HasNext,
		PrevPage:     p.PrevPage,
		NextPage:     p.NextPage,
	}
}
