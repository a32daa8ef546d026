package http

import (
	"net/http"
	"strconv"
	"time"

	"library-admin-backend/internal/apperr"
	"library-admin-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct{ uc *loan.Usecase }

func NewDashboardHandler(uc *loan.Usecase) *DashboardHandler { return &DashboardHandler{uc: uc} }

func (h *DashboardHandler) Stats(c echo.Context) error {
	months, _ := strconv.Atoi(c.QueryParam("months"))
	topN, _ := strconv.Atoi(c.QueryParam("top"))

	stats, err := h.uc.Dashboard(c.Request().Context(), months, topN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) OverdueLoans(c echo.Context) error {
	loans, err := h.uc.OverdueLoans(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"loans": loans, "count": len(loans)})
}

func (h *DashboardHandler) FineReport(c echo.Context) error {
	from, err := time.Parse(time.DateOnly, c.QueryParam("from"))
	if err != nil {
		return writeError(c, apperr.InvalidInput("from must be a YYYY-MM-DD date"))
	}
	to, err := time.Parse(time.DateOnly, c.QueryParam("to"))
	if err != nil {
		return writeError(c, apperr.InvalidInput("to must be a YYYY-MM-DD date"))
	}

	report, err := h.uc.FineTotals(c.Request().Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
