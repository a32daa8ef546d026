package http

import (
	"net/http"

	"library-admin-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	MemberID uint64 `json:"member_id" validate:"required"`
	BookID   uint64 `json:"book_id" validate:"required"`
	LoanDate string `json:"loan_date" validate:"omitempty,dateonly"`
	DueDate  string `json:"due_date" validate:"omitempty,dateonly"`
	Notes    string `json:"notes"`
}

type returnLoanReq struct {
	ReturnDate string `json:"return_date" validate:"omitempty,dateonly"`
	Notes      string `json:"notes"`
}

type extendLoanReq struct {
	Days int `json:"days" validate:"required,gt=0"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "validation failed", Details: ToFieldErrors(err),
		})
	}

	loanDate, err := parseDate(req.LoanDate)
	if err != nil {
		return writeError(c, err)
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return writeError(c, err)
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		MemberID: req.MemberID,
		BookID:   req.BookID,
		LoanDate: loanDate,
		DueDate:  dueDate,
		Notes:    req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ReturnLoan(c echo.Context) error {
	var req returnLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "validation failed", Details: ToFieldErrors(err),
		})
	}

	returnDate, err := parseDate(req.ReturnDate)
	if err != nil {
		return writeError(c, err)
	}

	res, err := h.uc.Return(c.Request().Context(), loan.ReturnBookInput{
		LoanCode:   c.Param("loan_code"),
		ReturnDate: returnDate,
		Notes:      req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) ExtendLoan(c echo.Context) error {
	var req extendLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error: "validation failed", Details: ToFieldErrors(err),
		})
	}

	res, err := h.uc.Extend(c.Request().Context(), c.Param("loan_code"), req.Days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
