package query

// Op is a comparison operator usable in a Filter.
type Op string

const (
	OpEq  Op = "="
	OpGt  Op = ">"
	OpGte Op = ">="
	OpLt  Op = "<"
	OpLte Op = "<="
)

func (o Op) Valid() bool {
	switch o {
	case OpEq, OpGt, OpGte, OpLt, OpLte:
		return true
	}
	return false
}

// Filter matches a single field against a value with a comparison operator.
type Filter struct {
	Field string
	Op    Op
	Value any
}

// Eq is shorthand for an exact-match filter.
func Eq(field string, value any) Filter { return Filter{Field: field, Op: OpEq, Value: value} }

type Sort struct {
	Field string
	Desc  bool
}

// Request describes one page worth of a filtered, searched, sorted listing.
// Page is 1-indexed; zero values for Page/PerPage mean "use defaults".
type Request struct {
	Filters []Filter
	Search  string
	Sort    Sort
	Page    int
	PerPage int
}

// Page is the result of a paginated query plus its metadata.
type Page[T any] struct {
	Records      []T   `json:"records"`
	TotalRecords int64 `json:"total_records"`
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	PerPage      int   `json:"per_page"`
	HasPrev      bool  `json:"has_prev"`
	HasNext      bool  `json:"has_next"`
	PrevPage     int   `json:"prev_page,omitempty"`
	NextPage     int   `json:"next_page,omitempty"`
}

// TotalPages returns ceil(total/perPage). Zero records give zero pages.
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}
	pages := total / int64(perPage)
	if total%int64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

// ClampPage clamps a 1-indexed page number into [1, totalPages]
// (or to 1 when there are no pages at all).
func ClampPage(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// ClampPerPage applies the default and maximum page size.
func ClampPerPage(perPage, def, max int) int {
	if perPage < 1 {
		perPage = def
	}
	if max > 0 && perPage > max {
		perPage = max
	}
	return perPage
}

// NewPage assembles a Page from fetched records and the clamped inputs.
func NewPage[T any](records []T, total int64, page, perPage int) *Page[T] {
	totalPages := TotalPages(total, perPage)
	page = ClampPage(page, totalPages)
	p := &Page[T]{
		Records:      records,
		TotalRecords: total,
		CurrentPage:  page,
		TotalPages:   totalPages,
		PerPage:      perPage,
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
	}
	if p.HasPrev {
		p.PrevPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}
