package mysql

import (
	"context"
	"time"

	loanDomain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

var loanListSpec = Spec{
	SearchFields: []string{"loan_code", "notes"},
	FilterFields: map[string]string{
		"status":      "status",
		"member_id":   "member_id",
		"book_id":     "book_id",
		"loan_date":   "loan_date",
		"due_date":    "due_date",
		"fine_amount": "fine_amount",
	},
	SortFields: map[string]string{
		"id":          "id",
		"loan_code":   "loan_code",
		"loan_date":   "loan_date",
		"due_date":    "due_date",
		"fine_amount": "fine_amount",
	},
	DefaultSort: "id DESC",
	Preloads:    []string{"Member", "Book"},
}

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByCode(ctx context.Context, code string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_code = ?", code).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) GetByCodeForUpdate(ctx context.Context, code string) (*loanDomain.Loan, error) {
	tx := r.db.WithContext(ctx)
	// sqlite (tests) has no row locks; its transactions serialize anyway
	if tx.Dialector.Name() == "mysql" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	res := tx.Where("loan_code = ?", code).First(&out)
	return &out, res.Error
}

func (r *LoanRepository) CountOpenByMemberID(ctx context.Context, memberID uint64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("member_id = ? AND status = ?", memberID, loanDomain.StatusBorrowed).
		Count(&n).Error
	return n, err
}

func (r *LoanRepository) List(ctx context.Context, req query.Request) (*query.Page[loanDomain.Loan], error) {
	return FindPage[loanDomain.Loan](ctx, r.db, loanListSpec, req)
}

func (r *LoanRepository) CountOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("status = ? AND due_date < ?", loanDomain.StatusBorrowed, asOf).
		Count(&n).Error
	return n, err
}

func (r *LoanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	err := r.db.WithContext(ctx).
		Preload("Member").Preload("Book").
		Where("status = ? AND due_date < ?", loanDomain.StatusBorrowed, asOf).
		Order("due_date ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *LoanRepository) SumFinesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Select("COALESCE(SUM(fine_amount), 0)").
		Where("status = ? AND return_date >= ? AND return_date <= ?", loanDomain.StatusReturned, from, to).
		Scan(&total).Error
	return total, err
}

// MonthlyCounts buckets loans by calendar month over the trailing window
// ending at asOf. Bucketing happens in Go so the query stays portable
// between MySQL and the sqlite test store.
func (r *LoanRepository) MonthlyCounts(ctx context.Context, months int, asOf time.Time) ([]loanDomain.MonthlyCount, error) {
	asOf = loanDomain.DateOf(asOf)
	start := time.Date(asOf.Year(), asOf.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	var dates []time.Time
	err := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).
		Where("loan_date >= ? AND loan_date <= ?", start, asOf).
		Pluck("loan_date", &dates).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, months)
	for _, d := range dates {
		counts[d.UTC().Format("2006-01")]++
	}
	out := make([]loanDomain.MonthlyCount, 0, months)
	for m := start; !m.After(asOf); m = m.AddDate(0, 1, 0) {
		key := m.Format("2006-01")
		out = append(out, loanDomain.MonthlyCount{Month: key, Count: counts[key]})
	}
	return out, nil
}

func (r *LoanRepository) TopBooks(ctx context.Context, limit int) ([]loanDomain.BookCount, error) {
	var out []loanDomain.BookCount
	err := r.db.WithContext(ctx).Table("loans").
		Select("loans.book_id AS book_id, books.title AS title, COUNT(*) AS count").
		Joins("JOIN books ON books.id = loans.book_id").
		Group("loans.book_id, books.title").
		Order("count DESC, book_id ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *LoanRepository) TopMembers(ctx context.Context, limit int) ([]loanDomain.MemberCount, error) {
	var out []loanDomain.MemberCount
	err := r.db.WithContext(ctx).Table("loans").
		Select("loans.member_id AS member_id, members.full_name AS full_name, COUNT(*) AS count").
		Joins("JOIN members ON members.id = loans.member_id").
		Group("loans.member_id, members.full_name").
		Order("count DESC, member_id ASC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}
