package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"library-admin-backend/internal/domain/member"
	"library-admin-backend/internal/query"
	"library-admin-backend/internal/testutil/bookmock"
	"library-admin-backend/internal/testutil/loanmock"
	"library-admin-backend/internal/testutil/membermock"
	"library-admin-backend/internal/usecase/listing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingHandler(members *membermock.Repo) *ListingHandler {
	uc := listing.NewUsecase(
		&bookmock.Repo{}, members, &loanmock.Repo{}, nil, nil,
		100, func() time.Time { return fixedNow },
	)
	return NewListingHandler(uc, 20)
}

func TestListMembers_ParsesQuery(t *testing.T) {
	var got query.Request
	members := &membermock.Repo{
		ListFn: func(ctx context.Context, req query.Request) (*query.Page[member.Member], error) {
			got = req
			return query.NewPage([]member.Member{{ID: 1}}, 1, req.Page, req.PerPage), nil
		},
	}
	h := newListingHandler(members)

	c, rec := newRequestCtx(http.MethodGet,
		"/members?page=2&per_page=10&search=ada&sort=full_name&dir=desc&filter=status:=:active&filter=id:>=:5", "")

	require.NoError(t, h.ListMembers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 10, got.PerPage)
	assert.Equal(t, "ada", got.Search)
	assert.Equal(t, query.Sort{Field: "full_name", Desc: true}, got.Sort)
	require.Len(t, got.Filters, 2)
	assert.Equal(t, query.Filter{Field: "status", Op: query.OpEq, Value: "active"}, got.Filters[0])
	assert.Equal(t, query.Filter{Field: "id", Op: query.OpGte, Value: "5"}, got.Filters[1])
}

func TestListMembers_Defaults(t *testing.T) {
	var got query.Request
	members := &membermock.Repo{
		ListFn: func(ctx context.Context, req query.Request) (*query.Page[member.Member], error) {
			got = req
			return query.NewPage[member.Member](nil, 0, req.Page, req.PerPage), nil
		},
	}
	h := newListingHandler(members)

	c, rec := newRequestCtx(http.MethodGet, "/members", "")
	require.NoError(t, h.ListMembers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 20, got.PerPage)
	assert.Empty(t, got.Filters)
}

func TestListMembers_BadPage(t *testing.T) {
	h := newListingHandler(&membermock.Repo{})
	c, rec := newRequestCtx(http.MethodGet, "/members?page=two", "")

	require.NoError(t, h.ListMembers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMembers_MalformedFilter(t *testing.T) {
	h := newListingHandler(&membermock.Repo{})
	c, rec := newRequestCtx(http.MethodGet, "/members?filter=status-active", "")

	require.NoError(t, h.ListMembers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListMembers_UnsupportedOperator(t *testing.T) {
	h := newListingHandler(&membermock.Repo{})
	c, rec := newRequestCtx(http.MethodGet, "/members?filter=status:~:active", "")

	require.NoError(t, h.ListMembers(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestParseFilter(t *testing.T) {
	f, err := parseFilter("available_stock:>:0")
	require.NoError(t, err)
	assert.Equal(t, query.Filter{Field: "available_stock", Op: query.OpGt, Value: "0"}, f)

	// value may itself contain colons
	f, err = parseFilter("notes:=:a:b")
	require.NoError(t, err)
	assert.Equal(t, "a:b", f.Value)

	_, err = parseFilter("no-colons")
	require.Error(t, err)
}
