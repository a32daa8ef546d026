package http

import (
	"net/http"
	"strconv"
	"strings"

	"library-admin-backend/internal/apperr"
	"library-admin-backend/internal/query"
	"library-admin-backend/internal/usecase/listing"

	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	uc             *listing.Usecase
	defaultPerPage int
}

func NewListingHandler(uc *listing.Usecase, defaultPerPage int) *ListingHandler {
	return &ListingHandler{uc: uc, defaultPerPage: defaultPerPage}
}

func (h *ListingHandler) ListBooks(c echo.Context) error      { return h.list(c, listing.KindBooks) }
func (h *ListingHandler) ListMembers(c echo.Context) error    { return h.list(c, listing.KindMembers) }
func (h *ListingHandler) ListLoans(c echo.Context) error      { return h.list(c, listing.KindLoans) }
func (h *ListingHandler) ListCategories(c echo.Context) error { return h.list(c, listing.KindCategories) }
func (h *ListingHandler) ListUsers(c echo.Context) error      { return h.list(c, listing.KindUsers) }

func (h *ListingHandler) list(c echo.Context, kind listing.Kind) error {
	req, err := h.parseRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	page, err := h.uc.Paginate(c.Request().Context(), kind, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// Query string shape: ?page=2&per_page=20&search=tolkien&sort=title&dir=desc
// and zero or more filter=field:op:value terms (op one of = > >= < <=).
func (h *ListingHandler) parseRequest(c echo.Context) (query.Request, error) {
	req := query.Request{
		Search:  strings.TrimSpace(c.QueryParam("search")),
		Page:    1,
		PerPage: h.defaultPerPage,
	}

	if v := c.QueryParam("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, apperr.InvalidInput("page must be a number, got %q", v)
		}
		req.Page = n
	}
	if v := c.QueryParam("per_page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, apperr.InvalidInput("per_page must be a number, got %q", v)
		}
		req.PerPage = n
	}
	if v := c.QueryParam("sort"); v != "" {
		req.Sort = query.Sort{Field: v, Desc: c.QueryParam("dir") == "desc"}
	}

	for _, raw := range c.QueryParams()["filter"] {
		f, err := parseFilter(raw)
		if err != nil {
			return req, err
		}
		req.Filters = append(req.Filters, f)
	}
	return req, nil
}

func parseFilter(raw string) (query.Filter, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return query.Filter{}, apperr.InvalidInput("filter %q must look like field:op:value", raw)
	}
	f := query.Filter{Field: parts[0], Op: query.Op(parts[1]), Value: parts[2]}
	if !f.Op.Valid() {
		return query.Filter{}, apperr.InvalidInput("unsupported filter operator %q", parts[1])
	}
	return f, nil
}
