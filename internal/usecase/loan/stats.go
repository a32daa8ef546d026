package loan

import (
	"context"
	"time"

	"library-admin-backend/internal/apperr"
	domain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/domain/uow"
)

// DashboardStats aggregates the numbers the admin dashboard charts:
// currently-overdue loans, the monthly loan-count series, and the
// most-borrowed books / most-active members.
type DashboardStats struct {
	OverdueCount  int64                 `json:"overdue_count"`
	MonthlyLoans  []domain.MonthlyCount `json:"monthly_loans"`
	PopularBooks  []domain.BookCount    `json:"popular_books"`
	ActiveMembers []domain.MemberCount  `json:"active_members"`
}

type FineReport struct {
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	TotalFine int64     `json:"total_fine"`
}

func (u *Usecase) Dashboard(ctx context.Context, months, topN int) (*DashboardStats, error) {
	if months <= 0 {
		months = 12
	}
	if topN <= 0 {
		topN = 5
	}
	asOf := domain.DateOf(u.now())

	var stats DashboardStats
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		if stats.OverdueCount, err = r.Loans.CountOverdue(ctx, asOf); err != nil {
			return err
		}
		if stats.MonthlyLoans, err = r.Loans.MonthlyCounts(ctx, months, asOf); err != nil {
			return err
		}
		if stats.PopularBooks, err = r.Loans.TopBooks(ctx, topN); err != nil {
			return err
		}
		stats.ActiveMembers, err = r.Loans.TopMembers(ctx, topN)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// OverdueLoans lists every unreturned loan past due as of now, with member
// and book data joined in for display.
func (u *Usecase) OverdueLoans(ctx context.Context) ([]LoanDTO, error) {
	asOf := u.now()

	var out []LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		loans, err := r.Loans.ListOverdue(ctx, domain.DateOf(asOf))
		if err != nil {
			return err
		}
		out = make([]LoanDTO, 0, len(loans))
		for i := range loans {
			out = append(out, *toDTO(&loans[i], asOf))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FineTotals sums fines collected on loans returned between from and to
// (inclusive, date granularity).
func (u *Usecase) FineTotals(ctx context.Context, from, to time.Time) (*FineReport, error) {
	from, to = domain.DateOf(from), domain.DateOf(to)
	if to.Before(from) {
		return nil, apperr.InvalidInput("report range end %s precedes start %s",
			to.Format(time.DateOnly), from.Format(time.DateOnly))
	}

	report := &FineReport{From: from, To: to}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		total, err := r.Loans.SumFinesBetween(ctx, from, to)
		if err != nil {
			return err
		}
		report.TotalFine = total
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
