package repository

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson"
)

func TestParseListQueryDefaults(t *testing.T) {
	q := ParseListQuery(url.Values{}, CategorySchema)

	assert.Equal(t, "", q.Search)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "newest", q.Sort)
	assert.Empty(t, q.Filters)
}

func TestParseListQuery(t *testing.T) {
	values := url.Values{
		"search": {"shirt"},
		"page":   {"3"},
		"limit":  {"25"},
		"sort":   {"price-low"},
		"status": {"active"},
	}
	q := ParseListQuery(values, ProductSchema)

	assert.Equal(t, "shirt", q.Search)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "price-low", q.Sort)
	assert.Equal(t, map[string]string{"status": "active"}, q.Filters)
	assert.Equal(t, int64(50), q.Skip())
}

func TestParseListQueryIgnoresBadValues(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{"zero page", url.Values{"page": {"0"}, "limit": {"0"}}},
		{"negative", url.Values{"page": {"-2"}, "limit": {"-5"}}},
		{"garbage", url.Values{"page": {"abc"}, "limit": {"xyz"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ParseListQuery(tt.values, UserSchema)
			assert.Equal(t, 1, q.Page)
			assert.Equal(t, 10, q.Limit)
		})
	}
}

func TestParseListQuerySkipsAllFilter(t *testing.T) {
	q := ParseListQuery(url.Values{"role": {"all"}}, UserSchema)
	assert.Empty(t, q.Filters)

	q = ParseListQuery(url.Values{"role": {""}}, UserSchema)
	assert.Empty(t, q.Filters)
}

func TestMongoFilterSearchAndFilter(t *testing.T) {
	q := ListQuery{Search: "blue", Filters: map[string]string{"status": "active"}}
	filter := MongoFilter(ProductSchema, q)

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 2)

	first := or[0].(bson.M)
	cond := first["title"].(bson.M)
	assert.Equal(t, "blue", cond["$regex"])
	assert.Equal(t, "i", cond["$options"])

	assert.Equal(t, "active", filter["status"])
}

func TestMongoFilterEscapesRegex(t *testing.T) {
	q := ListQuery{Search: "a.b*"}
	filter := MongoFilter(CategorySchema, q)

	or := filter["$or"].(bson.A)
	cond := or[0].(bson.M)["name"].(bson.M)
	assert.Equal(t, `a\.b\*`, cond["$regex"])
}

func TestMongoFilterEmpty(t *testing.T) {
	filter := MongoFilter(CategorySchema, ListQuery{})
	assert.Empty(t, filter)
}

func TestMongoSort(t *testing.T) {
	tests := []struct {
		sort  string
		field string
		order int
	}{
		{"newest", "created_at", -1},
		{"oldest", "created_at", 1},
		{"name-asc", "title", 1},
		{"name-desc", "title", -1},
		{"price-low", "price", 1},
		{"price-high", "price", -1},
		{"bogus", "created_at", -1}, // falls back to newest
		{"", "created_at", -1},
	}
	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			d := MongoSort(ProductSchema, ListQuery{Sort: tt.sort})
			require.Len(t, d, 1)
			assert.Equal(t, tt.field, d[0].Key)
			assert.Equal(t, tt.order, d[0].Value)
		})
	}
}

func TestSQLWhere(t *testing.T) {
	q := ListQuery{Search: "blue", Filters: map[string]string{"status": "active"}}
	clause, args := SQLWhere(ProductSchema, q, 1)

	assert.Equal(t, "(title ILIKE $1 OR description ILIKE $2) AND status = $3", clause)
	assert.Equal(t, []interface{}{"%blue%", "%blue%", "active"}, args)
}

func TestSQLWhereEmpty(t *testing.T) {
	clause, args := SQLWhere(UserSchema, ListQuery{}, 1)
	assert.Equal(t, "", clause)
	assert.Empty(t, args)
}

func TestSQLOrder(t *testing.T) {
	assert.Equal(t, "created_at DESC", SQLOrder(UserSchema, ListQuery{Sort: "newest"}))
	assert.Equal(t, "name ASC", SQLOrder(UserSchema, ListQuery{Sort: "name-asc"}))
	assert.Equal(t, "created_at DESC", SQLOrder(UserSchema, ListQuery{Sort: "unknown"}))
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		total int64
		limit int
		pages int64
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{7, 3, 3},
	}
	for _, tt := range tests {
		p := NewPagination(tt.total, ListQuery{Page: 1, Limit: tt.limit})
		assert.Equal(t, tt.pages, p.Pages, "total=%d limit=%d", tt.total, tt.limit)
		assert.Equal(t, tt.total, p.Total)
	}
}
