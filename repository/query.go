package repository

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// SortField names a stored field and its direction.
type SortField struct {
	Field string
	Desc  bool
}

// ListSchema describes how a resource collection may be searched, filtered
// and sorted. One value exists per resource; the same schema drives both the
// Mongo and the Postgres backend (bson tags and column names match).
type ListSchema struct {
	// SearchFields are matched with a case-insensitive substring test,
	// combined with OR, when the search term is non-empty.
	SearchFields []string
	// FilterFields maps a query parameter name to the stored field it
	// filters by equality. An empty or "all" value means no filter.
	FilterFields map[string]string
	// SortKeys maps recognized sort parameter values to sort fields.
	// Unrecognized keys fall back to "newest".
	SortKeys map[string]SortField
}

// ListQuery carries the recognized list parameters of a request.
type ListQuery struct {
	Search  string
	Page    int
	Limit   int
	Sort    string
	Filters map[string]string
}

// ParseListQuery extracts list parameters from a URL query, applying the
// defaults page=1, limit=10, sort=newest. Page and limit floor at 1.
func ParseListQuery(values url.Values, schema ListSchema) ListQuery {
	q := ListQuery{
		Search:  values.Get("search"),
		Page:    1,
		Limit:   10,
		Sort:    values.Get("sort"),
		Filters: make(map[string]string),
	}
	if q.Sort == "" {
		q.Sort = "newest"
	}
	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		q.Page = n
	}
	if n, err := strconv.Atoi(values.Get("limit")); err == nil && n > 0 {
		q.Limit = n
	}
	for param := range schema.FilterFields {
		if v := values.Get(param); v != "" && v != "all" {
			q.Filters[param] = v
		}
	}
	return q
}

// Skip is the number of records preceding the requested page.
func (q ListQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

func (s ListSchema) sortField(key string) SortField {
	if f, ok := s.SortKeys[key]; ok {
		return f
	}
	return s.SortKeys["newest"]
}

// MongoFilter builds the bson filter document for a list query. The search
// term is regex-escaped so it always behaves as a literal substring match.
func MongoFilter(s ListSchema, q ListQuery) bson.M {
	filter := bson.M{}
	if q.Search != "" {
		or := bson.A{}
		for _, field := range s.SearchFields {
			or = append(or, bson.M{field: bson.M{
				"$regex":   regexp.QuoteMeta(q.Search),
				"$options": "i",
			}})
		}
		filter["$or"] = or
	}
	for param, field := range s.FilterFields {
		if v, ok := q.Filters[param]; ok {
			filter[field] = v
		}
	}
	return filter
}

// MongoSort builds the sort document for a list query.
func MongoSort(s ListSchema, q ListQuery) bson.D {
	f := s.sortField(q.Sort)
	order := 1
	if f.Desc {
		order = -1
	}
	return bson.D{{Key: f.Field, Value: order}}
}

// SQLWhere builds a WHERE clause (without the keyword) and its arguments for
// a list query. Placeholders start at $startArg. Returns an empty clause when
// nothing is filtered.
func SQLWhere(s ListSchema, q ListQuery, startArg int) (string, []interface{}) {
	var conds []string
	var args []interface{}
	if q.Search != "" {
		var parts []string
		for _, field := range s.SearchFields {
			args = append(args, "%"+q.Search+"%")
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", field, startArg+len(args)-1))
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}
	params := make([]string, 0, len(s.FilterFields))
	for param := range s.FilterFields {
		params = append(params, param)
	}
	sort.Strings(params)
	for _, param := range params {
		if v, ok := q.Filters[param]; ok {
			args = append(args, v)
			conds = append(conds, fmt.Sprintf("%s = $%d", s.FilterFields[param], startArg+len(args)-1))
		}
	}
	return strings.Join(conds, " AND "), args
}

// SQLOrder builds the ORDER BY expression for a list query.
func SQLOrder(s ListSchema, q ListQuery) string {
	f := s.sortField(q.Sort)
	if f.Desc {
		return f.Field + " DESC"
	}
	return f.Field + " ASC"
}

// Pagination is the paging summary included in list responses.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int64 `json:"pages"`
}

// NewPagination computes pages = ceil(total/limit).
func NewPagination(total int64, q ListQuery) Pagination {
	pages := (total + int64(q.Limit) - 1) / int64(q.Limit)
	return Pagination{Total: total, Page: q.Page, Pages: pages}
}
