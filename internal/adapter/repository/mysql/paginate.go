package mysql

import (
	"context"
	"fmt"
	"strings"

	"library-admin-backend/internal/apperr"
	"library-admin-backend/internal/query"

	"gorm.io/gorm"
)

// Spec whitelists how one listing may be searched, filtered and sorted.
// Field names arrive from the outside, so anything not in the maps is
// rejected rather than interpolated into SQL.
type Spec struct {
	SearchFields []string
	FilterFields map[string]string // request field -> column
	SortFields   map[string]string
	DefaultSort  string
	Preloads     []string
}

// FindPage runs the shared count + clamp + offset/limit dance for any model.
func FindPage[T any](ctx context.Context, db *gorm.DB, spec Spec, req query.Request) (*query.Page[T], error) {
	if req.PerPage <= 0 {
		return nil, apperr.InvalidInput("per_page must be positive, got %d", req.PerPage)
	}

	tx := db.WithContext(ctx).Model(new(T))

	for _, f := range req.Filters {
		col, ok := spec.FilterFields[f.Field]
		if !ok {
			return nil, apperr.InvalidInput("field %q is not filterable", f.Field)
		}
		if !f.Op.Valid() {
			return nil, apperr.InvalidInput("unsupported filter operator %q", string(f.Op))
		}
		tx = tx.Where(fmt.Sprintf("%s %s ?", col, f.Op), f.Value)
	}

	if term := strings.TrimSpace(req.Search); term != "" && len(spec.SearchFields) > 0 {
		like := "%" + strings.ToLower(term) + "%"
		sub := db.Session(&gorm.Session{NewDB: true})
		for i, field := range spec.SearchFields {
			expr := "LOWER(" + field + ") LIKE ?"
			if i == 0 {
				sub = sub.Where(expr, like)
			} else {
				sub = sub.Or(expr, like)
			}
		}
		tx = tx.Where(sub)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	order := spec.DefaultSort
	if req.Sort.Field != "" {
		col, ok := spec.SortFields[req.Sort.Field]
		if !ok {
			return nil, apperr.InvalidInput("field %q is not sortable", req.Sort.Field)
		}
		order = col + " ASC"
		if req.Sort.Desc {
			order = col + " DESC"
		}
	}

	page := query.ClampPage(req.Page, query.TotalPages(total, req.PerPage))

	var records []T
	if total > 0 {
		for _, p := range spec.Preloads {
			tx = tx.Preload(p)
		}
		if order != "" {
			tx = tx.Order(order)
		}
		offset := (page - 1) * req.PerPage
		if err := tx.Offset(offset).Limit(req.PerPage).Find(&records).Error; err != nil {
			return nil, err
		}
	}
	return query.NewPage(records, total, page, req.PerPage), nil
}
