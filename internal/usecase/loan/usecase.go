package loan

import (
	"context"
	"errors"
	"time"

	"library-admin-backend/internal/actor"
	"library-admin-backend/internal/apperr"
	domain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/domain/member"
	"library-admin-backend/internal/domain/uow"
	"library-admin-backend/pkg/id"

	"gorm.io/gorm"
)

const (
	loanCodePrefix  = "LN-"
	loanCodeLen     = 10
	codeGenAttempts = 5
)

type Usecase struct {
	uow uow.UnitOfWork
	cfg Config
	now func() time.Time
}

// NewUsecase wires the engine to its transactional store. now is injected so
// every overdue/fine computation can be pinned in tests.
func NewUsecase(u uow.UnitOfWork, cfg Config, now func() time.Time) *Usecase {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Usecase{uow: u, cfg: cfg, now: now}
}

// Create starts a loan: checks member eligibility and book availability,
// takes a copy off the shelf, and persists the new loan under a fresh code.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	today := domain.DateOf(u.now())

	loanDate := today
	if in.LoanDate != nil {
		loanDate = domain.DateOf(*in.LoanDate)
	}
	dueDate := loanDate.AddDate(0, 0, u.cfg.DefaultLoanDays)
	if in.DueDate != nil {
		dueDate = domain.DateOf(*in.DueDate)
		if dueDate.Before(loanDate) {
			return nil, apperr.InvalidInput("due date %s precedes loan date %s",
				dueDate.Format(time.DateOnly), loanDate.Format(time.DateOnly))
		}
	}

	var created *domain.Loan
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Members.GetByID(ctx, in.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("member %d not found", in.MemberID)
			}
			return err
		}
		if m.Status != member.StatusActive {
			return apperr.InvalidState("member %d is %s and may not borrow", m.ID, m.Status)
		}
		open, err := r.Loans.CountOpenByMemberID(ctx, m.ID)
		if err != nil {
			return err
		}
		if !m.CanBorrow(open, u.cfg.MaxConcurrentLoans) {
			return apperr.InvalidState("member %d already has %d open loans (limit %d)",
				m.ID, open, u.cfg.MaxConcurrentLoans)
		}

		b, err := r.Books.GetByID(ctx, in.BookID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("book %d not found", in.BookID)
			}
			return err
		}
		if b.AvailableStock <= 0 {
			return apperr.InvalidState("book %d has no available copies", b.ID)
		}

		ok, err := r.Books.DecrementAvailable(ctx, b.ID)
		if err != nil {
			return err
		}
		if !ok {
			// read saw stock, conditional update did not: lost the race
			return apperr.Conflict("book %d was taken concurrently", b.ID)
		}

		code, err := u.freshLoanCode(ctx, r.Loans)
		if err != nil {
			return err
		}

		l := &domain.Loan{
			LoanCode:  code,
			MemberID:  m.ID,
			BookID:    b.ID,
			LoanDate:  loanDate,
			DueDate:   dueDate,
			Status:    domain.StatusBorrowed,
			Notes:     in.Notes,
			CreatedBy: actor.ID(ctx),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDTO(created, u.now()), nil
}

// Return records a return, computes the overdue fine and puts the copy back
// on the shelf. A returned loan is terminal.
func (u *Usecase) Return(ctx context.Context, in ReturnBookInput) (*ReturnResult, error) {
	returnDate := domain.DateOf(u.now())
	if in.ReturnDate != nil {
		returnDate = domain.DateOf(*in.ReturnDate)
	}

	var out *ReturnResult
	err := u.uow.WithinLoanTx(ctx, in.LoanCode, func(r uow.Repos, l *domain.Loan) error {
		if l.Status == domain.StatusReturned {
			return apperr.InvalidState("loan %s is already returned", l.LoanCode)
		}
		if returnDate.Before(domain.DateOf(l.LoanDate)) {
			return apperr.InvalidInput("return date %s precedes loan date %s",
				returnDate.Format(time.DateOnly), l.LoanDate.Format(time.DateOnly))
		}

		days, fine := domain.Fine(l.DueDate, returnDate, u.cfg.FinePerDay)
		rd := returnDate
		l.ReturnDate = &rd
		l.Status = domain.StatusReturned
		l.FineAmount = fine
		if in.Notes != "" {
			l.Notes = in.Notes
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		if err := r.Books.IncrementAvailable(ctx, l.BookID); err != nil {
			return err
		}
		out = &ReturnResult{
			LoanCode:    l.LoanCode,
			ReturnDate:  rd,
			OverdueDays: days,
			FineAmount:  fine,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Extend pushes the due date forward by days. The extension is additive on
// the current due date, never re-anchored on today.
func (u *Usecase) Extend(ctx context.Context, loanCode string, days int) (*ExtendResult, error) {
	if days <= 0 {
		return nil, apperr.InvalidInput("extension must be a positive number of days, got %d", days)
	}

	var out *ExtendResult
	err := u.uow.WithinLoanTx(ctx, loanCode, func(r uow.Repos, l *domain.Loan) error {
		if l.Status == domain.StatusReturned {
			return apperr.InvalidState("loan %s is already returned", l.LoanCode)
		}
		l.DueDate = domain.DateOf(l.DueDate).AddDate(0, 0, days)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		out = &ExtendResult{LoanCode: l.LoanCode, DueDate: l.DueDate}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a loan by code with its derived status as of now.
func (u *Usecase) Get(ctx context.Context, loanCode string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByCode(ctx, loanCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan %s not found", loanCode)
			}
			return err
		}
		dto = toDTO(l, u.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) freshLoanCode(ctx context.Context, repo domain.Repository) (string, error) {
	for i := 0; i < codeGenAttempts; i++ {
		code := id.NewCode(loanCodePrefix, loanCodeLen)
		_, err := repo.GetByCode(ctx, code)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}
	}
	return "", apperr.Conflict("could not allocate a unique loan code")
}
