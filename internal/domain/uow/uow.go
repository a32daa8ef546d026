package uow

import (
	"context"

	"library-admin-backend/internal/domain/book"
	"library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/domain/member"
)

type Repos struct {
	Loans   loan.Repository
	Books   book.Repository
	Members member.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanCode string, fn func(r Repos, l *loan.Loan) error) error
}
