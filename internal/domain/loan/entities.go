package loan

import (
	"time"

	"library-admin-backend/internal/domain/book"
	"library-admin-backend/internal/domain/member"
)

type Status string

const (
	StatusBorrowed Status = "borrowed"
	StatusReturned Status = "returned"
	// StatusOverdue is never stored; it is derived per read from the due
	// date and a reference date (see EffectiveStatus).
	StatusOverdue Status = "overdue"
)

type Loan struct {
	ID         uint64         `gorm:"primaryKey;column:id" json:"id"`
	LoanCode   string         `gorm:"size:16;uniqueIndex:ux_loans_loan_code" json:"loan_code"`
	MemberID   uint64         `gorm:"index:idx_loans_member" json:"member_id"`
	BookID     uint64         `gorm:"index:idx_loans_book" json:"book_id"`
	Member     *member.Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Book       *book.Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	LoanDate   time.Time      `gorm:"type:date;index" json:"loan_date"`
	DueDate    time.Time      `gorm:"type:date;index" json:"due_date"`
	ReturnDate *time.Time     `gorm:"type:date" json:"return_date,omitempty"`
	Status     Status         `gorm:"type:enum('borrowed','returned');default:'borrowed';index" json:"status"`
	FineAmount int64          `gorm:"default:0" json:"fine_amount"`
	Notes      string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy  string         `gorm:"size:32" json:"-"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// EffectiveStatus resolves the derived overdue state: an unreturned loan
// whose due date lies before the reference date reads as overdue.
func (l *Loan) EffectiveStatus(ref time.Time) Status {
	if l.Status == StatusReturned {
		return StatusReturned
	}
	if DateOf(ref).After(DateOf(l.DueDate)) {
		return StatusOverdue
	}
	return StatusBorrowed
}
