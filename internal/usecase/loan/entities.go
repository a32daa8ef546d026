package loan

import (
	"time"

	"library-admin-backend/internal/domain/book"
	domain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/domain/member"
)

// Config are the business constants the engine runs on.
type Config struct {
	DefaultLoanDays    int
	FinePerDay         int64
	MaxConcurrentLoans int
}

type CreateLoanInput struct {
	MemberID uint64
	BookID   uint64
	LoanDate *time.Time // nil = today
	DueDate  *time.Time // nil = loan date + DefaultLoanDays
	Notes    string
}

type ReturnBookInput struct {
	LoanCode   string
	ReturnDate *time.Time // nil = today
	Notes      string
}

type LoanDTO struct {
	LoanCode   string         `json:"loan_code"`
	MemberID   uint64         `json:"member_id"`
	BookID     uint64         `json:"book_id"`
	Member     *member.Member `json:"member,omitempty"`
	Book       *book.Book     `json:"book,omitempty"`
	LoanDate   time.Time      `json:"loan_date"`
	DueDate    time.Time      `json:"due_date"`
	ReturnDate *time.Time     `json:"return_date,omitempty"`
	Status     domain.Status  `json:"status"`
	FineAmount int64          `json:"fine_amount"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ReturnResult struct {
	LoanCode    string    `json:"loan_code"`
	ReturnDate  time.Time `json:"return_date"`
	OverdueDays int       `json:"overdue_days"`
	FineAmount  int64     `json:"fine_amount"`
}

type ExtendResult struct {
	LoanCode string    `json:"loan_code"`
	DueDate  time.Time `json:"due_date"`
}

func toDTO(l *domain.Loan, ref time.Time) *LoanDTO {
	return &LoanDTO{
		LoanCode:   l.LoanCode,
		MemberID:   l.MemberID,
		BookID:     l.BookID,
		Member:     l.Member,
		Book:       l.Book,
		LoanDate:   l.LoanDate,
		DueDate:    l.DueDate,
		ReturnDate: l.ReturnDate,
		Status:     l.EffectiveStatus(ref),
		FineAmount: l.FineAmount,
		Notes:      l.Notes,
		CreatedAt:  l.CreatedAt,
	}
}
