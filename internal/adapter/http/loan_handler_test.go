package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"library-admin-backend/internal/domain/book"
	domain "library-admin-backend/internal/domain/loan"
	"library-admin-backend/internal/domain/member"
	"library-admin-backend/internal/domain/uow"
	"library-admin-backend/internal/testutil/bookmock"
	"library-admin-backend/internal/testutil/loanmock"
	"library-admin-backend/internal/testutil/membermock"
	"library-admin-backend/internal/testutil/uowmock"
	"library-admin-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func testConfig() loan.Config {
	return loan.Config{DefaultLoanDays: 14, FinePerDay: 2000, MaxConcurrentLoans: 3}
}

type loanEnv struct {
	loans   *loanmock.Repo
	books   *bookmock.Repo
	members *membermock.Repo
	handler *LoanHandler
}

// newLoanEnv wires a handler over pass-through mocks with one active member
// and one available book.
func newLoanEnv() *loanEnv {
	loans := &loanmock.Repo{}
	books := &bookmock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*book.Book, error) {
			return &book.Book{ID: id, Stock: 3, AvailableStock: 2}, nil
		},
	}
	members := &membermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*member.Member, error) {
			return &member.Member{ID: id, Status: member.StatusActive}, nil
		},
	}
	repos := uow.Repos{Loans: loans, Books: books, Members: members}
	u := uowmock.Passthrough(repos, func(ctx context.Context, code string) (*domain.Loan, error) {
		return loans.GetByCodeForUpdate(ctx, code)
	})
	uc := loan.NewUsecase(u, testConfig(), func() time.Time { return fixedNow })
	return &loanEnv{loans: loans, books: books, members: members, handler: NewLoanHandler(uc)}
}

func newRequestCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreateLoan_Created(t *testing.T) {
	env := newLoanEnv()
	c, rec := newRequestCtx(http.MethodPost, "/loans", `{"member_id":7,"book_id":3}`)

	require.NoError(t, env.handler.CreateLoan(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	dto := decodeBody[loan.LoanDTO](t, rec)
	assert.Equal(t, "LN-", dto.LoanCode[:3])
	assert.Equal(t, uint64(7), dto.MemberID)
	assert.Equal(t, domain.StatusBorrowed, dto.Status)
	assert.Equal(t, time.Date(2024, 1, 24, 0, 0, 0, 0, time.UTC), dto.DueDate)
}

func TestCreateLoan_MalformedJSON(t *testing.T) {
	env := newLoanEnv()
	c, rec := newRequestCtx(http.MethodPost, "/loans", `{"member_id":`)

	require.NoError(t, env.handler.CreateLoan(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateLoan_MissingFields(t *testing.T) {
	env := newLoanEnv()
	c, rec := newRequestCtx(http.MethodPost, "/loans", `{"book_id":3}`)

	require.NoError(t, env.handler.CreateLoan(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeBody[ErrorResponse](t, rec)
	assert.True(t, containsFieldMsg(resp.Details, "MemberID", "required"))
}

func TestCreateLoan_BadDate(t *testing.T) {
	env := newLoanEnv()
	c, rec := newRequestCtx(http.MethodPost, "/loans",
		`{"member_id":7,"book_id":3,"due_date":"24/01/2024"}`)

	require.NoError(t, env.handler.CreateLoan(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decodeBody[ErrorResponse](t, rec)
	assert.True(t, containsFieldMsg(resp.Details, "DueDate", "YYYY-MM-DD"))
}

func TestCreateLoan_MemberNotFound(t *testing.T) {
	env := newLoanEnv()
	env.members.GetByIDFn = nil // lookup falls back to record-not-found
	c, rec := newRequestCtx(http.MethodPost, "/loans", `{"member_id":7,"book_id":3}`)

	require.NoError(t, env.handler.CreateLoan(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateLoan_BookExhausted(t *testing.T) {
	env := newLoanEnv()
	env.books.GetByIDFn = func(ctx context.Context, id uint64) (*book.Book, error) {
		return &book.Book{ID: id, Stock: 3, AvailableStock: 0}, nil
	}
	c, rec := newRequestCtx(http.MethodPost, "/loans", `{"member_id":7,"book_id":3}`)

	require.NoError(t, env.handler.CreateLoan(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestCreateLoan_LostStockRace(t *testing.T) {
	env := newLoanEnv()
	env.books.DecrementAvailableFn = func(ctx context.Context, id uint64) (bool, error) {
		return false, nil
	}
	c, rec := newRequestCtx(http.MethodPost, "/loans", `{"member_id":7,"book_id":3}`)

	require.NoError(t, env.handler.CreateLoan(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReturnLoan_WithFine(t *testing.T) {
	env := newLoanEnv()
	env.loans.GetByCodeForUpdateFn = func(ctx context.Context, code string) (*domain.Loan, error) {
		return &domain.Loan{
			LoanCode: code, BookID: 3,
			LoanDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DueDate:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Status:   domain.StatusBorrowed,
		}, nil
	}
	c, rec := newRequestCtx(http.MethodPost, "/loans/LN-AAAAAAAAAA/return", `{}`)
	c.SetParamNames("loan_code")
	c.SetParamValues("LN-AAAAAAAAAA")

	require.NoError(t, env.handler.ReturnLoan(c))
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[loan.ReturnResult](t, rec)
	assert.Equal(t, 5, res.OverdueDays) // Jan 5 due, returned Jan 10
	assert.Equal(t, int64(10000), res.FineAmount)
}

func TestReturnLoan_AlreadyReturned(t *testing.T) {
	env := newLoanEnv()
	env.loans.GetByCodeForUpdateFn = func(ctx context.Context, code string) (*domain.Loan, error) {
		return &domain.Loan{LoanCode: code, Status: domain.StatusReturned}, nil
	}
	c, rec := newRequestCtx(http.MethodPost, "/loans/LN-AAAAAAAAAA/return", `{}`)
	c.SetParamNames("loan_code")
	c.SetParamValues("LN-AAAAAAAAAA")

	require.NoError(t, env.handler.ReturnLoan(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestExtendLoan_OK(t *testing.T) {
	env := newLoanEnv()
	env.loans.GetByCodeForUpdateFn = func(ctx context.Context, code string) (*domain.Loan, error) {
		return &domain.Loan{
			LoanCode: code,
			LoanDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DueDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:   domain.StatusBorrowed,
		}, nil
	}
	c, rec := newRequestCtx(http.MethodPost, "/loans/LN-AAAAAAAAAA/extend", `{"days":7}`)
	c.SetParamNames("loan_code")
	c.SetParamValues("LN-AAAAAAAAAA")

	require.NoError(t, env.handler.ExtendLoan(c))
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[loan.ExtendResult](t, rec)
	assert.Equal(t, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC), res.DueDate)
}

func TestExtendLoan_NonPositiveDays(t *testing.T) {
	env := newLoanEnv()
	c, rec := newRequestCtx(http.MethodPost, "/loans/LN-AAAAAAAAAA/extend", `{"days":0}`)
	c.SetParamNames("loan_code")
	c.SetParamValues("LN-AAAAAAAAAA")

	require.NoError(t, env.handler.ExtendLoan(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetLoan_NotFound(t *testing.T) {
	env := newLoanEnv()
	c, rec := newRequestCtx(http.MethodGet, "/loans/LN-MISSINGAAA", "")
	c.SetParamNames("loan_code")
	c.SetParamValues("LN-MISSINGAAA")

	require.NoError(t, env.handler.GetLoan(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
