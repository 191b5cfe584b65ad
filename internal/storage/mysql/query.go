package mysql

import (
	"strings"

	"stayhub/internal/domain"
)

// hotelColumns whitelists the externally filterable/sortable fields and
// maps them to columns. Unknown fields are dropped rather than rejected,
// matching how the source store ignored non-schema keys.
var hotelColumns = map[string]string{
	"id":         "id",
	"name":       "name",
	"address":    "address",
	"district":   "district",
	"province":   "province",
	"postalcode": "postalcode",
	"tel":        "tel",
	"region":     "region",
	"avgRating":  "avg_rating",
	"numReviews": "num_reviews",
	"createdAt":  "created_at",
}

var sqlOps = map[domain.Op]string{
	domain.OpEq:  "=",
	domain.OpGt:  ">",
	domain.OpGte: ">=",
	domain.OpLt:  "<",
	domain.OpLte: "<=",
}

// buildHotelList compiles a ListQuery into the listing statement and its
// companion count statement. Placeholders only; field names never come
// from user input unvetted.
func buildHotelList(q domain.ListQuery) (listSQL string, listArgs []any, countSQL string, countArgs []any) {
	var where []string
	var args []any
	for _, f := range q.Filters {
		col, ok := hotelColumns[f.Field]
		if !ok || len(f.Values) == 0 {
			continue
		}
		if f.Op == domain.OpIn {
			ph := strings.TrimSuffix(strings.Repeat("?,", len(f.Values)), ",")
			where = append(where, col+" IN ("+ph+")")
			for _, v := range f.Values {
				args = append(args, v)
			}
			continue
		}
		where = append(where, col+" "+sqlOps[f.Op]+" ?")
		args = append(args, f.Values[0])
	}

	var b strings.Builder
	b.WriteString("SELECT id, name, address, district, province, postalcode, tel, region, avg_rating, num_reviews, created_at FROM hotels")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	var order []string
	for _, s := range q.Sort {
		col, ok := hotelColumns[s.Field]
		if !ok {
			continue
		}
		dir := " ASC"
		if s.Desc {
			dir = " DESC"
		}
		order = append(order, col+dir)
	}
	if len(order) == 0 {
		order = []string{"created_at DESC", "id DESC"}
	}
	b.WriteString(" ORDER BY ")
	b.WriteString(strings.Join(order, ", "))
	b.WriteString(" LIMIT ? OFFSET ?")

	countSQL = "SELECT COUNT(*) FROM hotels"
	if len(where) > 0 {
		countSQL += " WHERE " + strings.Join(where, " AND ")
	}
	countArgs = append(countArgs, args...)

	listArgs = append(args, q.Limit, q.Offset())
	return b.String(), listArgs, countSQL, countArgs
}
