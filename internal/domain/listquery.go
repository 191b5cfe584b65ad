package domain

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// Op is a comparison operator carried by a list filter. The empty string
// means equality.
type Op string

const (
	OpEq  Op = ""
	OpGt  Op = "gt"
	OpGte Op = "gte"
	OpLt  Op = "lt"
	OpLte Op = "lte"
	OpIn  Op = "in"
)

func ParseOp(s string) (Op, bool) {
	switch Op(s) {
	case OpGt, OpGte, OpLt, OpLte, OpIn:
		return Op(s), true
	}
	return OpEq, false
}

type Filter struct {
	Field  string
	Op     Op
	Values []string // one value, except OpIn
}

type SortKey struct {
	Field string
	Desc  bool
}

// ListQuery is the structured form of a generic listing request, produced
// from raw query parameters and compiled into store syntax by the repo.
type ListQuery struct {
	Filters []Filter
	Select  []string
	Sort    []SortKey
	Page    int
	Limit   int
}

func (q ListQuery) Offset() int { return (q.Page - 1) * q.Limit }

type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// PaginationFor emits next only when a later page exists and prev only
// when the offset is past the first page.
func PaginationFor(page, limit int, total int64) Pagination {
	var p Pagination
	if int64(page*limit) < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if (page-1)*limit > 0 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return p
}
