package loan

import (
	"context"
	"time"

	"library-admin-backend/internal/query"
)

// MonthlyCount is one bucket of the monthly loan-count time series.
type MonthlyCount struct {
	Month string `json:"month"` // "2006-01"
	Count int64  `json:"count"`
}

// BookCount ranks a book by how often it has been borrowed.
type BookCount struct {
	BookID uint64 `json:"book_id"`
	Title  string `json:"title"`
	Count  int64  `json:"count"`
}

// MemberCount ranks a member by how many loans they have taken.
type MemberCount struct {
	MemberID uint64 `json:"member_id"`
	FullName string `json:"full_name"`
	Count    int64  `json:"count"`
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByCode(ctx context.Context, code string) (*Loan, error)
	// GetByCodeForUpdate locks the loan row for the rest of the transaction.
	GetByCodeForUpdate(ctx context.Context, code string) (*Loan, error)
	CountOpenByMemberID(ctx context.Context, memberID uint64) (int64, error)
	List(ctx context.Context, req query.Request) (*query.Page[Loan], error)

	// Derived/report queries. asOf and the range bounds are compared at
	// date granularity.
	CountOverdue(ctx context.Context, asOf time.Time) (int64, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]Loan, error)
	SumFinesBetween(ctx context.Context, from, to time.Time) (int64, error)
	MonthlyCounts(ctx context.Context, months int, asOf time.Time) ([]MonthlyCount, error)
	TopBooks(ctx context.Context, limit int) ([]BookCount, error)
	TopMembers(ctx context.Context, limit int) ([]MemberCount, error)
}
