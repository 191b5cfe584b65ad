package httpserver

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"stayhub/internal/domain"
)

// Keys with routing meaning rather than filter meaning.
var reservedKeys = map[string]struct{}{
	"select": {},
	"sort":   {},
	"page":   {},
	"limit":  {},
}

// ParseListQuery translates a raw query string into a ListQuery.
// Filters come in two spellings, both supported:
//
//	?avgRating[gte]=4     bracket operator on the key
//	?avgRating=gte:4      operator prefix on the value
//
// Bare values are equality matches. Unknown operators degrade to
// equality on the literal value; unknown fields are passed through and
// dropped later by the storage layer's column whitelist.
func ParseListQuery(vals url.Values) domain.ListQuery {
	q := domain.ListQuery{Page: domain.DefaultPage, Limit: domain.DefaultLimit}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := reservedKeys[key]; ok {
			continue
		}
		field, op := key, domain.OpEq
		if i := strings.IndexByte(key, '['); i > 0 && strings.HasSuffix(key, "]") {
			if o, ok := domain.ParseOp(key[i+1 : len(key)-1]); ok {
				field, op = key[:i], o
			}
		}
		for _, v := range vals[key] {
			f := domain.Filter{Field: field, Op: op, Values: []string{v}}
			if op == domain.OpEq {
				if j := strings.IndexByte(v, ':'); j > 0 {
					if o, ok := domain.ParseOp(v[:j]); ok {
						f.Op, f.Values = o, []string{v[j+1:]}
					}
				}
			}
			if f.Op == domain.OpIn {
				f.Values = strings.Split(f.Values[0], ",")
			}
			q.Filters = append(q.Filters, f)
		}
	}

	if sel := vals.Get("select"); sel != "" {
		for _, f := range strings.Split(sel, ",") {
			if f = strings.TrimSpace(f); f != "" {
				q.Select = append(q.Select, f)
			}
		}
	}
	if raw := vals.Get("sort"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			switch {
			case part == "" || part == "-":
			case part[0] == '-':
				q.Sort = append(q.Sort, domain.SortKey{Field: part[1:], Desc: true})
			default:
				q.Sort = append(q.Sort, domain.SortKey{Field: part})
			}
		}
	}
	if n, err := strconv.Atoi(vals.Get("page")); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(vals.Get("limit")); err == nil && n > 0 {
		q.Limit = n
	}
	return q
}

// parseRatingFilter reads the reviews ?rating= parameter: a bare
// integer is an exact match, "gte:N" a lower bound.
func parseRatingFilter(raw string) (domain.RatingFilter, error) {
	var rf domain.RatingFilter
	if raw == "" {
		return rf, nil
	}
	if rest, ok := strings.CutPrefix(raw, "gte:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return rf, domain.Invalid("rating filter must be an integer")
		}
		rf.Min = &n
		return rf, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return rf, domain.Invalid("rating filter must be an integer")
	}
	rf.Exact = &n
	return rf, nil
}

// parsePageLimit reads plain pagination params with the same defaults
// as ParseListQuery, for endpoints that take no filters.
func parsePageLimit(vals url.Values) (page, limit int) {
	page, limit = domain.DefaultPage, domain.DefaultLimit
	if n, err := strconv.Atoi(vals.Get("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(vals.Get("limit")); err == nil && n > 0 {
		limit = n
	}
	return page, limit
}
